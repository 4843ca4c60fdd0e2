package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/sink"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

var _ sink.Sink = (*Sink)(nil)

func TestSink_UpsertsAreIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSink(nil)

	first, err := s.UpsertTeam(ctx, team.Team{Name: "Pro Recco", SeasonID: "s1", FranchiseID: "f1"})
	if err != nil {
		t.Fatalf("upsert team: %v", err)
	}
	second, err := s.UpsertTeam(ctx, team.Team{Name: "Pro Recco", SeasonID: "s1", FranchiseID: "f1", Abbreviation: "REC"})
	if err != nil {
		t.Fatalf("upsert team again: %v", err)
	}
	if first != second {
		t.Fatalf("expected same id, got %s and %s", first, second)
	}
	if len(s.Teams()) != 1 || s.Teams()[0].Abbreviation != "REC" {
		t.Fatalf("expected one refreshed team row, got %+v", s.Teams())
	}

	p1, _ := s.UpsertPlayerAndContract(ctx, player.Player{FullName: "Aaron Younger"}, player.Contract{TeamID: first, SeasonID: "s1"})
	p2, _ := s.UpsertPlayerAndContract(ctx, player.Player{FullName: "Aaron Younger"}, player.Contract{TeamID: first, SeasonID: "s1", JerseyNumber: "7"})
	if p1 != p2 || len(s.Players()) != 1 || len(s.Contracts()) != 1 {
		t.Fatalf("expected one player and contract, got %d/%d", len(s.Players()), len(s.Contracts()))
	}
}

func TestSink_UpsertActionsReplacesGameRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSink(nil)

	if err := s.UpsertActions(ctx, "missing", nil); err == nil {
		t.Fatalf("expected error for unknown game")
	}

	gameID, err := s.UpsertGame(ctx, game.Game{ProviderID: 4432, EditionID: "e1"})
	if err != nil {
		t.Fatalf("upsert game: %v", err)
	}
	if err := s.UpsertActions(ctx, gameID, []action.Action{{ActionNumber: 1}, {ActionNumber: 2}}); err != nil {
		t.Fatalf("upsert actions: %v", err)
	}
	if err := s.UpsertActions(ctx, gameID, []action.Action{{ActionNumber: 1}}); err != nil {
		t.Fatalf("upsert actions again: %v", err)
	}
	if got := len(s.Actions(gameID)); got != 1 {
		t.Fatalf("expected replaced action list of 1, got %d", got)
	}
	if s.Calls("UpsertActions") != 3 {
		t.Fatalf("unexpected call count %d", s.Calls("UpsertActions"))
	}
}
