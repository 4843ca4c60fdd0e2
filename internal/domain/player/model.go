package player

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/platform/names"
)

// Ref is a provider-side reference to a person, joined with the match roster.
type Ref struct {
	ProviderID   int64
	TeamName     string
	Name         string
	Surname      string
	Role         string
	Hand         string
	HeightCM     *int
	WeightKG     *int
	JerseyNumber string
}

// FullName is the cleaned "Name Surname" used as the identity key within a team.
func (r Ref) FullName() string {
	return names.FullName(r.Name, r.Surname)
}

func (r *Ref) Valid() bool {
	return r != nil && r.FullName() != ""
}

// Player is a person identity.
type Player struct {
	ID       string
	Name     string
	Surname  string
	FullName string
	Birthday *time.Time
	HeightCM *int
	WeightKG *int
	Hand     string
	Role     string
}

func FromRef(r Ref) Player {
	return Player{
		Name:     names.Person(r.Name),
		Surname:  names.Person(r.Surname),
		FullName: r.FullName(),
		HeightCM: r.HeightCM,
		WeightKG: r.WeightKG,
		Hand:     strings.TrimSpace(r.Hand),
		Role:     strings.TrimSpace(r.Role),
	}
}

func (p Player) Validate() error {
	if p.FullName == "" {
		return fmt.Errorf("player full name is required")
	}
	return nil
}

// Contract binds a player to a team for a season.
type Contract struct {
	PlayerID     string
	TeamID       string
	SeasonID     string
	JerseyNumber string
	PictureURL   string
}

func (c Contract) Validate() error {
	if c.TeamID == "" || c.SeasonID == "" {
		return fmt.Errorf("contract team and season ids are required")
	}
	return nil
}

// ParseMeasure reads the leading integer of values like "190 cm" or "95 kg".
func ParseMeasure(raw string) *int {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
