package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/names"
)

type Status string

const (
	StatusPlayed    Status = "PLAYED"
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusUnknown   Status = ""
)

// HasPlayByPlay reports whether the provider publishes events for the status.
func (s Status) HasPlayByPlay() bool {
	return s == StatusPlayed || s == StatusLive
}

// ParseStatus reads a filter value such as "played" or "LIVE".
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusPlayed:
		return StatusPlayed, nil
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusLive:
		return StatusLive, nil
	default:
		return StatusUnknown, fmt.Errorf("invalid game status %q: valid values are played, scheduled, live", raw)
	}
}

// Game is one match of an edition.
type Game struct {
	ID         string
	EditionID  string
	SeasonID   string
	ProviderID int64
	URL        string
	Date       time.Time
	Round      *int
	Status     Status
	Home       team.Profile
	Away       team.Profile
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	Overtimes  *int
}

func (g Game) Validate() error {
	if g.ProviderID <= 0 {
		return fmt.Errorf("game provider id must be > 0")
	}
	if g.Home.CanonicalName() == "" || g.Away.CanonicalName() == "" {
		return fmt.Errorf("game %d home and away teams are required", g.ProviderID)
	}
	if names.SameTeam(g.Home.Name, g.Away.Name) {
		return fmt.Errorf("game %d home and away team are the same", g.ProviderID)
	}
	return nil
}

// Filter narrows the games of a season. Zero-valued fields do not filter.
type Filter struct {
	Statuses    []Status
	Teams       []string
	Rounds      []int
	ProviderIDs []int64
	Start       *time.Time
	End         *time.Time
	Date        *time.Time
}

func (f Filter) Allows(g Game) bool {
	if len(f.Statuses) > 0 && !contains(f.Statuses, g.Status) {
		return false
	}
	if len(f.ProviderIDs) > 0 && !contains(f.ProviderIDs, g.ProviderID) {
		return false
	}
	if len(f.Rounds) > 0 && (g.Round == nil || !contains(f.Rounds, *g.Round)) {
		return false
	}
	if len(f.Teams) > 0 && !f.matchesTeam(g) {
		return false
	}

	day := truncateDay(g.Date)
	if f.Date != nil && !day.Equal(truncateDay(*f.Date)) {
		return false
	}
	if f.Start != nil && day.Before(truncateDay(*f.Start)) {
		return false
	}
	if f.End != nil && day.After(truncateDay(*f.End)) {
		return false
	}

	return true
}

func (f Filter) matchesTeam(g Game) bool {
	for _, name := range f.Teams {
		if names.SameTeam(name, g.Home.Name) || names.SameTeam(name, g.Away.Name) {
			return true
		}
	}
	return false
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
