package game

import (
	"testing"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

func sampleGame() Game {
	round := 3
	return Game{
		ProviderID: 4432,
		Date:       time.Date(2022, 11, 15, 18, 30, 0, 0, time.UTC),
		Round:      &round,
		Status:     StatusPlayed,
		Home:       team.Profile{Name: "Pro Recco"},
		Away:       team.Profile{Name: "Ferencváros"},
	}
}

func TestFilter_Allows(t *testing.T) {
	t.Parallel()

	g := sampleGame()
	day := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty", filter: Filter{}, want: true},
		{name: "status match", filter: Filter{Statuses: []Status{StatusPlayed}}, want: true},
		{name: "status miss", filter: Filter{Statuses: []Status{StatusScheduled}}, want: false},
		{name: "team folded", filter: Filter{Teams: []string{"FERENCVAROS"}}, want: true},
		{name: "team miss", filter: Filter{Teams: []string{"Brescia"}}, want: false},
		{name: "round", filter: Filter{Rounds: []int{3}}, want: true},
		{name: "round miss", filter: Filter{Rounds: []int{4}}, want: false},
		{name: "provider id", filter: Filter{ProviderIDs: []int64{1}}, want: false},
		{name: "exact date", filter: Filter{Date: day(2022, 11, 15)}, want: true},
		{name: "before start", filter: Filter{Start: day(2022, 11, 16)}, want: false},
		{name: "inside range", filter: Filter{Start: day(2022, 11, 1), End: day(2022, 11, 15)}, want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.filter.Allows(g); got != tc.want {
				t.Fatalf("Allows() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	if s, err := ParseStatus("played"); err != nil || s != StatusPlayed {
		t.Fatalf("ParseStatus(played) = (%q, %v)", s, err)
	}
	if _, err := ParseStatus("finished"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if !StatusLive.HasPlayByPlay() || StatusScheduled.HasPlayByPlay() {
		t.Fatalf("unexpected play-by-play availability")
	}
}

func TestValidate_RejectsSameSides(t *testing.T) {
	t.Parallel()

	g := sampleGame()
	g.Away = team.Profile{Name: "PRO RECCO"}
	if err := g.Validate(); err == nil {
		t.Fatalf("expected error for identical sides")
	}
}
