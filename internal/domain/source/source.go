package source

import (
	"context"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
)

// Source yields raw provider records for one league. Raw events are returned in
// the provider's chronological order.
type Source interface {
	League(ctx context.Context) (league.League, error)
	ListSeasons(ctx context.Context, filter season.Filter) ([]season.Season, error)
	ListGames(ctx context.Context, s season.Season) ([]game.Game, error)
	ListRawEvents(ctx context.Context, s season.Season, g game.Game) ([]action.RawEvent, error)
}
