package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/sink"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

var _ sink.Sink = (*Sink)(nil)

func TestActionModel_MapsNullableColumns(t *testing.T) {
	t.Parallel()

	linked := 1
	x := 3.5
	row := actionModel("g1", action.Action{
		ActionNumber:       2,
		Kind:               action.KindSteal,
		TeamID:             "t2",
		Flags:              action.NewFlags(action.FlagLost, action.FlagBallUnder),
		LinkedActionNumber: &linked,
		X:                  &x,
	})

	if row.GamePublicID != "g1" || row.Kind != "STEAL" {
		t.Fatalf("unexpected row identity %+v", row)
	}
	if !row.TeamPublicID.Valid || row.OpponentPublicID.Valid || row.PlayerPublicID.Valid {
		t.Fatalf("unexpected nullable ids %+v", row)
	}
	if !row.LinkedActionNumber.Valid || row.LinkedActionNumber.Int64 != 1 {
		t.Fatalf("unexpected linked number %+v", row.LinkedActionNumber)
	}
	if !row.X.Valid || row.Y.Valid {
		t.Fatalf("unexpected coordinates %+v/%+v", row.X, row.Y)
	}
	if len(row.Flags) != 2 || row.Flags[0] != "BALL_UNDER" {
		t.Fatalf("unexpected flags %v", row.Flags)
	}
}

func TestGameModel_UsesDeterministicPublicID(t *testing.T) {
	t.Parallel()

	s := NewSink(nil, nil)
	a := s.gameModel(game.Game{EditionID: "e1", ProviderID: 4432})
	b := s.gameModel(game.Game{EditionID: "e1", ProviderID: 4432, Status: game.StatusPlayed})
	if a.PublicID != b.PublicID {
		t.Fatalf("expected stable public id, got %s and %s", a.PublicID, b.PublicID)
	}
	if a.GameDate.Valid || a.Round.Valid {
		t.Fatalf("expected null date and round, got %+v", a)
	}
	if !b.Status.Valid || b.Status.String != "PLAYED" {
		t.Fatalf("unexpected status %+v", b.Status)
	}
}

func TestSink_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" || testing.Short() {
		t.Skip("TEST_DB_URL not set; run migrations and export it to enable")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	s := NewSink(db, nil)

	leagueID, err := s.UpsertLeague(ctx, league.League{Code: "TST", FullName: "Test League"})
	require.NoError(t, err)
	again, err := s.UpsertLeague(ctx, league.League{Code: "TST", FullName: "Test League Renamed"})
	require.NoError(t, err)
	require.Equal(t, leagueID, again)

	item := season.New(2022, 2124)
	item.LeagueID = leagueID
	seasonID, err := s.UpsertSeason(ctx, item)
	require.NoError(t, err)
	editionID, err := s.UpsertEdition(ctx, season.DefaultEdition(leagueID, seasonID))
	require.NoError(t, err)

	franchiseID, err := s.UpsertFranchise(ctx, team.Franchise{Name: "Test Club"})
	require.NoError(t, err)
	teamID, err := s.UpsertTeam(ctx, team.Team{Name: "Test Club", FranchiseID: franchiseID, SeasonID: seasonID})
	require.NoError(t, err)
	require.NoError(t, s.UpsertEditionParticipant(ctx, season.Participant{EditionID: editionID, TeamID: teamID}))
	require.NoError(t, s.UpsertEditionParticipant(ctx, season.Participant{EditionID: editionID, TeamID: teamID}))

	playerID, err := s.UpsertPlayerAndContract(ctx,
		player.Player{Name: "Test", Surname: "Player", FullName: "Test Player"},
		player.Contract{TeamID: teamID, SeasonID: seasonID, JerseyNumber: "7"},
	)
	require.NoError(t, err)

	gameID, err := s.UpsertGame(ctx, game.Game{
		EditionID:  editionID,
		SeasonID:   seasonID,
		ProviderID: 99999001,
		Date:       time.Date(2022, 10, 5, 18, 0, 0, 0, time.UTC),
		Status:     game.StatusPlayed,
		HomeTeamID: teamID,
	})
	require.NoError(t, err)

	actions := []action.Action{
		{ActionNumber: 1, Kind: action.KindTurnover, TeamID: teamID, PlayerID: playerID, Period: 1, Flags: action.NewFlags()},
		{ActionNumber: 2, Kind: action.KindSteal, Period: 1, Flags: action.NewFlags(action.FlagLost)},
	}
	require.NoError(t, s.UpsertActions(ctx, gameID, actions))
	require.NoError(t, s.UpsertActions(ctx, gameID, actions[:1]))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT count(*) FROM actions WHERE game_public_id = $1", gameID))
	require.Equal(t, 1, count)
}
