package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/sink"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/source"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	gameOutcomeStored  = "stored"
	gameOutcomeLinked  = "linked"
	gameOutcomeFailed  = "failed"
	gameOutcomeSkipped = "filtered"
)

type IngestionConfig struct {
	SeasonFilter   season.Filter
	GameFilter     game.Filter
	SkipPlayByPlay bool
	// GameWorkers bounds how many games run their action pipeline at once.
	// Values below 2 keep strictly sequential processing.
	GameWorkers int
}

// GameFailure describes one game that was aborted.
type GameFailure struct {
	Season     string
	ProviderID int64
	Err        error
}

type RunReport struct {
	League         string
	Seasons        int
	GamesSeen      int
	GamesFiltered  int
	GamesStored    int
	GamesLinked    int
	ActionsWritten int
	Failures       []GameFailure
}

// IngestionService walks league, seasons and games, resolving identities and
// persisting each checkpoint through the sink.
type IngestionService struct {
	source   source.Source
	sink     sink.Sink
	resolver *EntityResolver
	cfg      IngestionConfig
	logger   *logging.Logger
	metrics  *metrics.Recorder
}

func NewIngestionService(
	src source.Source,
	snk sink.Sink,
	resolver *EntityResolver,
	cfg IngestionConfig,
	logger *logging.Logger,
	recorder *metrics.Recorder,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	if resolver == nil {
		resolver = NewEntityResolver(snk, logger, recorder)
	}

	return &IngestionService{
		source:   src,
		sink:     snk,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
	}
}

// Run ingests every selected season of the source's league. Failures of a
// single game are reported in RunReport.Failures; league and season level
// failures abort the run.
func (s *IngestionService) Run(ctx context.Context) (RunReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Run")
	defer span.End()

	l, err := s.source.League(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("load league: %w", err)
	}
	if err := l.Validate(); err != nil {
		return RunReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	leagueID, err := s.sink.UpsertLeague(ctx, l)
	if err != nil {
		return RunReport{}, fmt.Errorf("upsert league %s: %w", l.Code, err)
	}
	l.ID = leagueID
	ctx = logging.ContextWith(ctx, "league", l.Code)
	report := RunReport{League: l.Code}

	seasons, err := s.source.ListSeasons(ctx, s.cfg.SeasonFilter)
	if err != nil {
		return report, fmt.Errorf("list seasons of %s: %w", l.Code, err)
	}

	for _, se := range seasons {
		if !s.cfg.SeasonFilter.Allows(se) {
			continue
		}
		se.LeagueID = l.ID
		if err := s.runSeason(ctx, se, &report); err != nil {
			return report, fmt.Errorf("season %s: %w", se.Key(), err)
		}
		report.Seasons++
	}

	s.logger.InfoContext(ctx, "ingestion finished",
		"seasons", report.Seasons,
		"games_seen", report.GamesSeen,
		"games_stored", report.GamesStored,
		"games_linked", report.GamesLinked,
		"games_failed", len(report.Failures),
		"actions", report.ActionsWritten,
	)
	return report, nil
}

type gameJob struct {
	season  season.Season
	edition season.Edition
	game    game.Game
}

func (s *IngestionService) runSeason(ctx context.Context, se season.Season, report *RunReport) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.runSeason", attribute.String("season", se.Key()))
	defer span.End()
	ctx = logging.ContextWith(ctx, "season", se.Key())

	if err := se.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	seasonID, err := s.sink.UpsertSeason(ctx, se)
	if err != nil {
		return fmt.Errorf("upsert season: %w", err)
	}
	se.ID = seasonID

	edition := season.DefaultEdition(se.LeagueID, se.ID)
	if err := edition.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	editionID, err := s.sink.UpsertEdition(ctx, edition)
	if err != nil {
		return fmt.Errorf("upsert edition: %w", err)
	}
	edition.ID = editionID

	s.resolver.BeginSeason(se)

	games, err := s.source.ListGames(ctx, se)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	s.logger.InfoContext(ctx, "season games listed", "games", len(games))

	jobs := make([]gameJob, 0, len(games))
	for _, g := range games {
		report.GamesSeen++
		if !s.cfg.GameFilter.Allows(g) {
			report.GamesFiltered++
			s.metrics.GameOutcome(gameOutcomeSkipped)
			continue
		}

		stored, err := s.storeGame(ctx, se, edition, g)
		if crerr.Is(err, ErrDimensionWrite) {
			return err
		}
		if err != nil {
			s.recordFailure(ctx, report, se, g, err)
			continue
		}
		report.GamesStored++

		if s.cfg.SkipPlayByPlay || !stored.Status.HasPlayByPlay() {
			s.metrics.GameOutcome(gameOutcomeStored)
			continue
		}
		jobs = append(jobs, gameJob{season: se, edition: edition, game: stored})
	}

	return s.runGames(ctx, jobs, report)
}

// storeGame resolves both sides and writes the game row.
func (s *IngestionService) storeGame(ctx context.Context, se season.Season, edition season.Edition, g game.Game) (game.Game, error) {
	if err := g.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	g.SeasonID = se.ID
	g.EditionID = edition.ID

	homeID, err := s.resolver.ResolveTeam(ctx, se, edition.ID, g.Home)
	if err != nil {
		return game.Game{}, teamResolveError("home", err)
	}
	awayID, err := s.resolver.ResolveTeam(ctx, se, edition.ID, g.Away)
	if err != nil {
		return game.Game{}, teamResolveError("away", err)
	}
	g.HomeTeamID = homeID
	g.AwayTeamID = awayID

	gameID, err := s.sink.UpsertGame(ctx, g)
	if err != nil {
		return game.Game{}, fmt.Errorf("upsert game: %w", err)
	}
	g.ID = gameID
	return g, nil
}

// teamResolveError keeps bad or unnamed team data a game failure; anything
// else came from the sink and is marked season-fatal.
func teamResolveError(side string, err error) error {
	if crerr.Is(err, ErrInvalidInput) || crerr.Is(err, ErrUnresolvedEntity) || crerr.Is(err, context.Canceled) {
		return fmt.Errorf("resolve %s team: %w", side, err)
	}
	return fmt.Errorf("%w: resolve %s team: %w", ErrDimensionWrite, side, err)
}

func (s *IngestionService) runGames(ctx context.Context, jobs []gameJob, report *RunReport) error {
	if len(jobs) == 0 {
		return nil
	}

	var mu sync.Mutex
	run := func(job gameJob) {
		start := time.Now()
		count, err := s.processGameSafely(ctx, job)
		s.metrics.ObserveGame(time.Since(start))

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			s.recordFailure(ctx, report, job.season, job.game, err)
			return
		}
		report.GamesLinked++
		report.ActionsWritten += count
		s.metrics.GameOutcome(gameOutcomeLinked)
		s.metrics.ActionsWritten(count)
		s.logger.InfoContext(ctx, "game linked",
			"game_provider_id", job.game.ProviderID,
			"actions", count,
		)
	}

	if s.cfg.GameWorkers < 2 || len(jobs) == 1 {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return err
			}
			run(job)
		}
		return nil
	}

	pool, err := ants.NewPool(min(s.cfg.GameWorkers, len(jobs)))
	if err != nil {
		return fmt.Errorf("create game worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, job := range jobs {
		job := job
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			run(job)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return fmt.Errorf("submit game to worker pool: %w", err)
		}
	}
	workers.Wait()

	return ctx.Err()
}

// processGameSafely turns a panic inside one game's pipeline into a game failure.
func (s *IngestionService) processGameSafely(ctx context.Context, job gameJob) (int, error) {
	var (
		count int
		err   error
		pc    panics.Catcher
	)
	pc.Try(func() {
		count, err = s.processGame(ctx, job.season, job.edition, job.game)
	})
	if recovered := pc.Recovered(); recovered != nil {
		return 0, fmt.Errorf("%w: %w", ErrGameFailed, recovered.AsError())
	}
	return count, err
}

func (s *IngestionService) recordFailure(ctx context.Context, report *RunReport, se season.Season, g game.Game, err error) {
	report.Failures = append(report.Failures, GameFailure{Season: se.Key(), ProviderID: g.ProviderID, Err: err})
	s.metrics.GameOutcome(gameOutcomeFailed)
	s.logger.ErrorContext(ctx, "game aborted",
		"game_provider_id", g.ProviderID,
		"home", g.Home.Name,
		"away", g.Away.Name,
		"error", err,
	)
}
