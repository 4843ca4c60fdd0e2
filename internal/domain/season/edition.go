package season

import "fmt"

const (
	DefaultPeriods          = 4
	DefaultPeriodDuration   = 480
	DefaultShotClock        = 30
	DefaultOvertimeDuration = 180
)

// Edition is a league's instance in a season plus its game clock rules, in seconds.
type Edition struct {
	ID               string
	LeagueID         string
	SeasonID         string
	Periods          int
	PeriodDuration   int
	ShotClock        int
	OvertimeDuration int
}

func DefaultEdition(leagueID, seasonID string) Edition {
	return Edition{
		LeagueID:         leagueID,
		SeasonID:         seasonID,
		Periods:          DefaultPeriods,
		PeriodDuration:   DefaultPeriodDuration,
		ShotClock:        DefaultShotClock,
		OvertimeDuration: DefaultOvertimeDuration,
	}
}

func (e Edition) Validate() error {
	if e.LeagueID == "" || e.SeasonID == "" {
		return fmt.Errorf("edition league and season ids are required")
	}
	if e.Periods <= 0 || e.PeriodDuration <= 0 {
		return fmt.Errorf("edition periods and period duration must be > 0")
	}
	return nil
}

// Participant records that a team took part in an edition.
type Participant struct {
	EditionID string
	TeamID    string
}
