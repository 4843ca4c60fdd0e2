package season

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Season is one league year, e.g. 2022-2023.
type Season struct {
	ID            string
	LeagueID      string
	StartYear     int
	EndYear       int
	CompetitionID int64
}

func New(startYear int, competitionID int64) Season {
	return Season{
		StartYear:     startYear,
		EndYear:       startYear + 1,
		CompetitionID: competitionID,
	}
}

// Key is the long form used for filtering and cache scoping, e.g. "2022-2023".
func (s Season) Key() string {
	return fmt.Sprintf("%d-%d", s.StartYear, s.EndYear)
}

// ShortKey is the two-digit form, e.g. "22-23".
func (s Season) ShortKey() string {
	return fmt.Sprintf("%02d-%02d", s.StartYear%100, s.EndYear%100)
}

func (s Season) Validate() error {
	if s.StartYear <= 0 {
		return fmt.Errorf("season start year is required")
	}
	if s.EndYear != s.StartYear+1 {
		return fmt.Errorf("season %s must span consecutive years", s.Key())
	}
	if s.CompetitionID <= 0 {
		return fmt.Errorf("season %s competition id must be > 0", s.Key())
	}
	return nil
}

// ParseKey accepts "2022-2023" or the short "22-23" form and returns the long
// form. Two-digit years >= 70 are read as 19xx.
func ParseKey(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid season %q, expected YYYY-YYYY or YY-YY", raw)
	}

	start, err := parseYear(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid season %q: %w", raw, err)
	}
	end, err := parseYear(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid season %q: %w", raw, err)
	}
	if end != start+1 {
		return "", fmt.Errorf("invalid season %q: years must be consecutive", raw)
	}

	return fmt.Sprintf("%d-%d", start, end), nil
}

func parseYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	switch len(raw) {
	case 2:
		if year >= 70 {
			return 1900 + year, nil
		}
		return 2000 + year, nil
	case 4:
		return year, nil
	default:
		return 0, fmt.Errorf("invalid year %q", raw)
	}
}

// LastStartingYear is the starting year of the season in progress at now.
// Seasons start in September.
func LastStartingYear(now time.Time) int {
	if now.Month() >= time.September {
		return now.Year()
	}
	return now.Year() - 1
}

// Filter restricts seasons by long key. An empty filter allows everything.
type Filter struct {
	Keys []string
}

func (f Filter) Allows(s Season) bool {
	if len(f.Keys) == 0 {
		return true
	}
	key := s.Key()
	for _, k := range f.Keys {
		if k == key {
			return true
		}
	}
	return false
}
