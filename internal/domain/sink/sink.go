package sink

import (
	"context"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

// Sink persists canonical rows. Every method is an idempotent upsert keyed by
// the entity's natural key and returns the stored identity.
type Sink interface {
	UpsertLeague(ctx context.Context, l league.League) (string, error)
	UpsertSeason(ctx context.Context, s season.Season) (string, error)
	UpsertEdition(ctx context.Context, e season.Edition) (string, error)
	UpsertFranchise(ctx context.Context, f team.Franchise) (string, error)
	UpsertTeam(ctx context.Context, t team.Team) (string, error)
	UpsertEditionParticipant(ctx context.Context, p season.Participant) error
	UpsertGame(ctx context.Context, g game.Game) (string, error)
	// UpsertActions replaces the stored actions of gameID with actions as one unit.
	UpsertActions(ctx context.Context, gameID string, actions []action.Action) error
	UpsertPlayerAndContract(ctx context.Context, p player.Player, c player.Contract) (string, error)
}
