package league

import (
	"fmt"
	"sort"
)

// League is a competition tracked on the provider, e.g. the LEN Champions League.
type League struct {
	ID       string
	Code     string
	FullName string
	Website  string
	// Competitions maps a season's starting year to the provider competition id.
	Competitions map[int]int64
}

func (l League) Validate() error {
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.FullName == "" {
		return fmt.Errorf("league full name is required")
	}
	for year, code := range l.Competitions {
		if code <= 0 {
			return fmt.Errorf("league %s: competition id for %d must be > 0", l.Code, year)
		}
	}

	return nil
}

// StartingYears returns the catalogued starting years in ascending order.
func (l League) StartingYears() []int {
	years := make([]int, 0, len(l.Competitions))
	for year := range l.Competitions {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
