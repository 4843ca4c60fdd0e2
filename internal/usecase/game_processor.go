package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/names"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dropReasonUnknownKind = "unknown_kind"
	dropReasonUnknownCard = "unknown_card"
	dropReasonMapping     = "mapping_error"
)

const warnReasonUnknownFlag = "unknown_flag"

// processGame runs the action pipeline of one game: fetch raw events, map them,
// resolve identities, link, and write the finished list in one sink call.
// Any error returned is fatal for this game only.
func (s *IngestionService) processGame(ctx context.Context, se season.Season, edition season.Edition, g game.Game) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.processGame",
		attribute.Int64("game.provider_id", g.ProviderID),
		attribute.String("game.id", g.ID),
	)
	defer span.End()
	ctx = logging.ContextWith(ctx, "game_provider_id", g.ProviderID)

	events, err := s.source.ListRawEvents(ctx, se, g)
	if err != nil {
		return 0, fmt.Errorf("list raw events: %w", err)
	}

	actions, err := s.buildActions(ctx, se, edition, g, events)
	if err != nil {
		return 0, err
	}

	if err := s.sink.UpsertActions(ctx, g.ID, actions); err != nil {
		return 0, fmt.Errorf("upsert actions: %w", err)
	}
	return len(actions), nil
}

func (s *IngestionService) buildActions(
	ctx context.Context,
	se season.Season,
	edition season.Edition,
	g game.Game,
	events []action.RawEvent,
) ([]action.Action, error) {
	mapper := action.NewMapper(g.Home.Name, g.Away.Name)
	linker := action.NewLinker(g.HomeTeamID, g.AwayTeamID)
	score := action.Score{}

	for _, ev := range events {
		mapped, err := mapper.Map(ev, score)
		if err != nil {
			s.metrics.DraftDropped(dropReason(err))
			s.logger.WarnContext(ctx, "drop raw event",
				"event_id", ev.ID,
				"kind", ev.Kind,
				"error", err,
			)
			continue
		}
		score = mapped.Score

		for _, warning := range mapped.Warnings {
			s.metrics.MappingWarning(warnReasonUnknownFlag)
			s.logger.WarnContext(ctx, "raw event mapped with warning",
				"event_id", ev.ID,
				"warning", warning,
			)
		}

		for _, draft := range mapped.Drafts {
			item, err := s.resolveDraft(ctx, se, g, draft)
			if err != nil {
				return nil, fmt.Errorf("event %s %s: %w", ev.ID, draft.Kind, err)
			}
			item.SeasonID = se.ID
			item.EditionID = edition.ID
			item.GameID = g.ID
			linker.Append(item)
		}
	}

	return linker.Actions(), nil
}

// resolveDraft maps the draft's team name onto the game's sides and resolves
// its player. A draft with no team keeps a null team and player.
func (s *IngestionService) resolveDraft(ctx context.Context, se season.Season, g game.Game, d action.Draft) (action.Action, error) {
	item := action.FromDraft(d)
	if d.TeamName == "" {
		return item, nil
	}

	switch {
	case names.SameTeam(d.TeamName, g.Home.Name):
		item.TeamID = g.HomeTeamID
		item.TeamName = g.Home.CanonicalName()
	case names.SameTeam(d.TeamName, g.Away.Name):
		item.TeamID = g.AwayTeamID
		item.TeamName = g.Away.CanonicalName()
	default:
		return action.Action{}, fmt.Errorf("%w: team %q plays neither side of game %d", ErrUnresolvedEntity, d.TeamName, g.ProviderID)
	}

	if d.Player == nil {
		return item, nil
	}
	playerID, err := s.resolver.ResolvePlayer(ctx, se, item.TeamID, *d.Player)
	if err != nil {
		return action.Action{}, err
	}
	item.PlayerID = playerID
	return item, nil
}

func dropReason(err error) string {
	switch {
	case crerr.Is(err, action.ErrUnknownEventKind):
		return dropReasonUnknownKind
	case crerr.Is(err, action.ErrUnknownCardColor):
		return dropReasonUnknownCard
	default:
		return dropReasonMapping
	}
}
