package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/sink"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/cache"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
	"go.opentelemetry.io/otel/attribute"
)

// EntityResolver hands out identities for franchises, teams and players. The
// first resolution of a key upserts through the sink; the identity is cached
// only once that write succeeded. Franchise and team identities are scoped to
// a season, player identities to the whole run.
type EntityResolver struct {
	sink       sink.Sink
	logger     *logging.Logger
	metrics    *metrics.Recorder
	franchises *cache.Store[string]
	teams      *cache.Store[string]
	players    *cache.Store[string]
}

func NewEntityResolver(s sink.Sink, logger *logging.Logger, recorder *metrics.Recorder) *EntityResolver {
	if logger == nil {
		logger = logging.Default()
	}

	return &EntityResolver{
		sink:       s,
		logger:     logger,
		metrics:    recorder,
		franchises: cache.NewStore[string](),
		teams:      cache.NewStore[string](),
		players:    cache.NewStore[string](),
	}
}

// BeginSeason drops the season-scoped identities of the previous season.
func (r *EntityResolver) BeginSeason(s season.Season) {
	r.franchises.Reset()
	r.teams.Reset()
	r.logger.Debug("entity resolver season scope reset", "season", s.Key())
}

func (r *EntityResolver) ResolveFranchise(ctx context.Context, s season.Season, profile team.Profile) (string, error) {
	name := profile.CanonicalName()
	if name == "" {
		return "", fmt.Errorf("%w: franchise without team name", ErrUnresolvedEntity)
	}

	return r.franchises.GetOrLoad(ctx, seasonScopedKey(s, name), func(ctx context.Context) (string, error) {
		franchise := team.FranchiseFromProfile(profile)
		if err := franchise.Validate(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		id, err := r.sink.UpsertFranchise(ctx, franchise)
		if err != nil {
			return "", fmt.Errorf("upsert franchise %q: %w", franchise.Name, err)
		}
		r.metrics.EntityUpserted("franchise")
		r.logger.DebugContext(ctx, "franchise resolved", "name", franchise.Name, "franchise_id", id)
		return id, nil
	})
}

// ResolveTeam resolves the team and its franchise, and records the team as an
// edition participant the first time it is seen in the season.
func (r *EntityResolver) ResolveTeam(ctx context.Context, s season.Season, editionID string, profile team.Profile) (string, error) {
	name := profile.CanonicalName()
	if name == "" {
		return "", fmt.Errorf("%w: team without name", ErrUnresolvedEntity)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.EntityResolver.ResolveTeam", attribute.String("team", name))
	defer span.End()

	return r.teams.GetOrLoad(ctx, seasonScopedKey(s, name), func(ctx context.Context) (string, error) {
		franchiseID, err := r.ResolveFranchise(ctx, s, profile)
		if err != nil {
			return "", err
		}

		item := team.FromProfile(profile, franchiseID, s.ID)
		if err := item.Validate(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		teamID, err := r.sink.UpsertTeam(ctx, item)
		if err != nil {
			return "", fmt.Errorf("upsert team %q: %w", item.Name, err)
		}
		if err := r.sink.UpsertEditionParticipant(ctx, season.Participant{EditionID: editionID, TeamID: teamID}); err != nil {
			return "", fmt.Errorf("upsert edition participant %q: %w", item.Name, err)
		}
		r.metrics.EntityUpserted("team")
		r.logger.DebugContext(ctx, "team resolved", "name", item.Name, "team_id", teamID)
		return teamID, nil
	})
}

// ResolvePlayer resolves a player by team and cleaned full name, writing the
// player and the season contract on first sight.
func (r *EntityResolver) ResolvePlayer(ctx context.Context, s season.Season, teamID string, ref player.Ref) (string, error) {
	fullName := ref.FullName()
	if teamID == "" || fullName == "" {
		return "", fmt.Errorf("%w: player %d has no team or name", ErrUnresolvedEntity, ref.ProviderID)
	}

	return r.players.GetOrLoad(ctx, teamID+" "+strings.ToLower(fullName), func(ctx context.Context) (string, error) {
		item := player.FromRef(ref)
		contract := player.Contract{
			TeamID:       teamID,
			SeasonID:     s.ID,
			JerseyNumber: ref.JerseyNumber,
		}
		if err := item.Validate(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := contract.Validate(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		id, err := r.sink.UpsertPlayerAndContract(ctx, item, contract)
		if err != nil {
			return "", fmt.Errorf("upsert player %q: %w", fullName, err)
		}
		r.metrics.EntityUpserted("player")
		return id, nil
	})
}

// seasonScopedKey folds case so spellings that differ only in casing share an
// identity. The league keeps same-named seasons of different leagues apart.
func seasonScopedKey(s season.Season, name string) string {
	return s.LeagueID + "/" + s.Key() + ":" + strings.ToLower(name)
}
