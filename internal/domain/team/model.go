package team

import (
	"fmt"

	"github.com/riskibarqy/waterpolo-pbp/internal/platform/names"
)

// Profile is what the provider tells us about a team in one season.
type Profile struct {
	ProviderID   int64
	Name         string
	Abbreviation string
	Gender       string
	Category     string
	Club         string
	City         string
	State        string
	Country      string
	LogoURL      string
	Color        string
}

// CanonicalName is the name used for identity keys and game side matching.
func (p Profile) CanonicalName() string {
	return names.Team(p.Name)
}

// FranchiseName is the club behind the team, falling back to the team name.
func (p Profile) FranchiseName() string {
	if club := names.Team(p.Club); club != "" {
		return club
	}
	return p.CanonicalName()
}

// Franchise is the club-level identity that persists across seasons.
type Franchise struct {
	ID      string
	Name    string
	City    string
	State   string
	Country string
}

func FranchiseFromProfile(p Profile) Franchise {
	return Franchise{
		Name:    p.FranchiseName(),
		City:    p.City,
		State:   p.State,
		Country: p.Country,
	}
}

func (f Franchise) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("franchise name is required")
	}
	return nil
}

// Team is a franchise's roster instance within one season.
type Team struct {
	ID           string
	FranchiseID  string
	SeasonID     string
	Name         string
	Abbreviation string
	Gender       string
	Category     string
	LogoURL      string
	Color        string
}

func FromProfile(p Profile, franchiseID, seasonID string) Team {
	return Team{
		FranchiseID:  franchiseID,
		SeasonID:     seasonID,
		Name:         p.CanonicalName(),
		Abbreviation: p.Abbreviation,
		Gender:       p.Gender,
		Category:     p.Category,
		LogoURL:      p.LogoURL,
		Color:        p.Color,
	}
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.FranchiseID == "" {
		return fmt.Errorf("team %s franchise id is required", t.Name)
	}
	if t.SeasonID == "" {
		return fmt.Errorf("team %s season id is required", t.Name)
	}

	return nil
}
