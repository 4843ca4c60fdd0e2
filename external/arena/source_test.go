package arena

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/source"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
)

var _ source.Source = (*Source)(nil)

const competitionJSON = `{
  "matches": [
    {"id": 4432, "startDate": "2022-11-15T18:30:00+01:00", "number": 3, "status": "Finished",
     "homeTeamGoalsTotal": 12, "awayTeamGoalsTotal": 9,
     "homeTeamId": 10, "awayTeamId": 20,
     "homeTeamDisplayName": "Pro Recco", "awayTeamDisplayName": "Ferencváros"},
    {"id": 4433, "startDate": "2022-11-29T20:00:00.000+01:00", "number": null, "status": "Not_Started",
     "homeTeamGoalsTotal": null, "awayTeamGoalsTotal": null,
     "homeTeamId": 20, "awayTeamId": 10,
     "homeTeamDisplayName": "Ferencváros", "awayTeamDisplayName": "Pro Recco"},
    {"id": 4434, "startDate": "2022-12-01T20:00:00", "number": 5, "status": "Postponed",
     "homeTeamId": 10, "awayTeamId": 20,
     "homeTeamDisplayName": "Pro Recco", "awayTeamDisplayName": "Ferencváros"}
  ],
  "competitionTeams": [
    {"teamId": 10, "team": {"shortName": "REC", "gender": "Men", "category": "Senior", "club": "Pro Recco Waterpolo 1913", "country": "Italy", "city": "Recco"}},
    {"teamId": 20, "team": {"shortName": "FTC", "gender": "Men", "category": "Senior", "club": null, "country": {"name": "Hungary"}, "city": "Budapest"}}
  ]
}`

const matchJSON = `{
  "homeTeam": {"id": 10, "name": "Pro Recco"},
  "awayTeam": {"id": 20, "name": "Ferencvaros"},
  "players": [
    {"playerId": 101, "player": {"name": "FRANCESCO", "surname": "di fulvio", "height": "190 cm", "weight": "90 kg", "dominantHand": "Right"}, "position": "Field", "team": {"id": 10, "name": "Pro Recco"}, "number": 7},
    {"playerId": 102, "player": {"name": "Aaron", "surname": "Younger", "height": null, "weight": null, "dominantHand": "Left"}, "position": "Field", "team": {"name": "Pro Recco"}, "number": "9"},
    {"playerId": 201, "player": {"name": "Soma", "surname": "Vogel", "height": "200 cm", "weight": "100 kg", "dominantHand": "Right"}, "position": "Goalkeeper", "team": {"id": 20, "name": "Ferencvaros"}, "number": 1},
    {"playerId": 202, "player": {"name": "Szilard", "surname": "Jansik", "height": null, "weight": null, "dominantHand": null}, "position": "Field", "team": {"id": 20, "name": "Ferencvaros"}, "number": 4}
  ]
}`

const eventsJSON = `[
  {"id": 1, "type": "Shot", "period": "First_Period", "minute": 7, "seconds": 40,
   "shot": {"isGoal": true, "teamId": 10, "takenBy": {"playerId": 101, "teamId": 10}, "type": "Regular_Attack",
            "locationX": 1.5, "locationY": 2.5, "blockedById": null, "blockedBy": null,
            "assistedById": 102, "assistedBy": {"playerId": 102, "teamId": 10},
            "savedById": null, "savedBy": null}},
  {"id": 2, "type": "Turnover", "period": "Second_Period", "minute": 5, "seconds": 2,
   "turnover": {"teamId": 20, "type": "Offensive_Foul", "lostPossesionPlayer": {"playerId": 202},
                "wonPossesionPlayerId": 101, "wonPossesionPlayer": {"playerId": 101, "teamId": 10}}},
  {"id": 3, "type": "Exclusion", "period": "Half_Time", "minute": 0, "seconds": 0,
   "exclusion": {"teamId": 20, "excludedPlayerId": null, "excludedPlayer": null}},
  {"id": 4, "type": "Swim_Off", "period": "Third_Period", "minute": 8, "seconds": 0,
   "swimoff": {"homeTeamSwimmer": {"playerId": 102}, "awayTeamSwimmer": {"playerId": 202}, "winnerSwimmer": {"playerId": 202}}},
  {"id": 5, "type": null, "period": "Overtime", "minute": 1, "seconds": 0}
]`

func newFixtureSource(t *testing.T, events string) *Source {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/Competitions/2124", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(competitionJSON))
	})
	mux.HandleFunc("/api/Matches/4432", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(matchJSON))
	})
	mux.HandleFunc("/api/Events/4432", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(events))
	})

	client := newTestClient(t, mux, nil)
	src := NewSource(client, league.League{
		Code:         "LEN",
		FullName:     "LEN Champions League",
		Competitions: map[int]int64{2021: 2000, 2022: 2124, 2023: 2300},
	}, logging.NewNop())
	src.now = func() time.Time { return time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC) }
	return src
}

func TestSource_ListSeasonsStopsAtCurrentSeason(t *testing.T) {
	t.Parallel()

	src := newFixtureSource(t, eventsJSON)

	seasons, err := src.ListSeasons(context.Background(), season.Filter{})
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	require.Equal(t, "2021-2022", seasons[0].Key())
	require.Equal(t, int64(2124), seasons[1].CompetitionID)

	filtered, err := src.ListSeasons(context.Background(), season.Filter{Keys: []string{"2022-2023"}})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
}

func TestSource_ListGamesMapsMatches(t *testing.T) {
	t.Parallel()

	src := newFixtureSource(t, eventsJSON)

	games, err := src.ListGames(context.Background(), season.New(2022, 2124))
	require.NoError(t, err)
	require.Len(t, games, 3)

	first := games[0]
	require.Equal(t, int64(4432), first.ProviderID)
	require.Equal(t, "https://total-waterpolo.com/tw_match/4432", first.URL)
	require.Equal(t, game.StatusPlayed, first.Status)
	require.NotNil(t, first.Round)
	require.Equal(t, 3, *first.Round)
	require.Equal(t, 12, *first.HomeScore)
	require.Equal(t, "Ferencvaros", first.Away.Name)
	require.Equal(t, "REC", first.Home.Abbreviation)
	require.Equal(t, "Hungary", first.Away.Country)
	require.Equal(t, "Pro Recco Waterpolo 1913", first.Home.FranchiseName())
	require.Equal(t, "Ferencvaros", first.Away.FranchiseName())
	require.Equal(t, 2022, first.Date.Year())

	require.Equal(t, game.StatusScheduled, games[1].Status)
	require.Nil(t, games[1].Round)
	require.Nil(t, games[1].HomeScore)
	require.Equal(t, game.StatusUnknown, games[2].Status)
}

func TestSource_ListRawEventsJoinsRoster(t *testing.T) {
	t.Parallel()

	src := newFixtureSource(t, eventsJSON)
	games, err := src.ListGames(context.Background(), season.New(2022, 2124))
	require.NoError(t, err)

	events, err := src.ListRawEvents(context.Background(), season.New(2022, 2124), games[0])
	require.NoError(t, err)
	require.Len(t, events, 4, "half-time event must be skipped")

	shot := events[0]
	require.Equal(t, action.EventShot, shot.Kind)
	require.Equal(t, 1, shot.Period)
	require.Equal(t, 460, shot.RemainingPeriodTime)
	require.Equal(t, "Pro Recco", shot.TeamName)
	require.True(t, shot.IsGoal)
	require.Equal(t, "Regular_Attack", shot.SubType)
	require.NotNil(t, shot.Player)
	require.Equal(t, "Francesco Di Fulvio", shot.Player.FullName())
	require.Equal(t, 190, *shot.Player.HeightCM)
	require.Equal(t, "7", shot.Player.JerseyNumber)
	require.NotNil(t, shot.AssistedBy)
	require.Equal(t, "Pro Recco", shot.AssistedBy.TeamName)
	require.Nil(t, shot.BlockedBy)
	require.Nil(t, shot.SavedBy)
	require.Equal(t, 1.5, *shot.X)

	turnover := events[1]
	require.Equal(t, "Ferencvaros", turnover.TeamName)
	require.Equal(t, "Offensive_Foul", turnover.SubType)
	require.Equal(t, "Ferencvaros", turnover.Player.TeamName)
	require.Equal(t, "Pro Recco", turnover.WonPossession.TeamName)

	swim := events[2]
	require.Equal(t, action.EventSwimOff, swim.Kind)
	require.Equal(t, int64(202), swim.Winner.ProviderID)
	require.Equal(t, "Pro Recco", swim.HomeSwimmer.TeamName)

	empty := events[3]
	require.Equal(t, "", empty.Kind)
	require.Equal(t, action.OvertimePeriod, empty.Period)
}

func TestSource_ListRawEventsFailsOnUnknownPlayer(t *testing.T) {
	t.Parallel()

	src := newFixtureSource(t, `[
	  {"id": 9, "type": "Card", "period": "First_Period", "minute": 1, "seconds": 0,
	   "card": {"type": "Yellow", "teamId": 10, "cardedPlayerId": 999, "cardedPlayer": {"playerId": 999}}}
	]`)
	games, err := src.ListGames(context.Background(), season.New(2022, 2124))
	require.NoError(t, err)

	_, err = src.ListRawEvents(context.Background(), season.New(2022, 2124), games[0])
	require.Error(t, err)
}
