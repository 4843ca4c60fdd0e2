package app

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/waterpolo-pbp/external/arena"
	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/sink"
	csvsink "github.com/riskibarqy/waterpolo-pbp/internal/infrastructure/repository/csv"
	"github.com/riskibarqy/waterpolo-pbp/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/waterpolo-pbp/internal/infrastructure/repository/postgres"
	idgen "github.com/riskibarqy/waterpolo-pbp/internal/platform/id"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
	"github.com/riskibarqy/waterpolo-pbp/internal/usecase"
)

// Ingest wires the configured source and sink and runs every selected league.
type Ingest struct {
	cfg     config.Config
	logger  *logging.Logger
	metrics *metrics.Recorder
	leagues []league.League
	sink    sink.Sink
	db      *sqlx.DB
	// resolver is shared by every league so player identities last the run.
	resolver *usecase.EntityResolver
}

func NewIngest(ctx context.Context, cfg config.Config, logger *logging.Logger, recorder *metrics.Recorder) (*Ingest, error) {
	if logger == nil {
		logger = logging.Default()
	}

	catalog, err := config.LoadCatalog(cfg.LeagueCatalogPath)
	if err != nil {
		return nil, err
	}
	leagues, err := catalog.Select(cfg.Leagues)
	if err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	in := &Ingest{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		leagues: leagues,
	}

	switch cfg.Sink {
	case config.SinkPostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		in.db = db
		in.sink = postgres.NewSink(db, idgen.NewNameBased())
	case config.SinkCSV:
		s, err := csvsink.NewSink(csvsink.Options{
			Dir:              cfg.CSVDir,
			Append:           cfg.CSVAppend,
			FieldSeparator:   cfg.CSVFileSeparator,
			DecimalSeparator: cfg.CSVDecimalSeparator,
		})
		if err != nil {
			return nil, err
		}
		in.sink = s
	default:
		in.sink = memory.NewSink(idgen.NewNameBased())
	}

	in.resolver = usecase.NewEntityResolver(in.sink, logger.Named("resolver"), recorder)

	logger.Info("ingest configured",
		"source", cfg.Source,
		"sink", cfg.Sink,
		"leagues", len(leagues),
		"game_workers", cfg.GameWorkers,
		"no_pbp", cfg.NoPBP,
	)
	return in, nil
}

// Run ingests the selected leagues one after another. A failing league does
// not stop the next one; every league error is returned combined.
func (in *Ingest) Run(ctx context.Context) ([]usecase.RunReport, error) {
	reports := make([]usecase.RunReport, 0, len(in.leagues))
	var runErr error

	for _, l := range in.leagues {
		if err := ctx.Err(); err != nil {
			return reports, crerr.CombineErrors(runErr, err)
		}

		service := usecase.NewIngestionService(
			in.newSource(l),
			in.sink,
			in.resolver,
			usecase.IngestionConfig{
				SeasonFilter:   in.cfg.SeasonFilter(),
				GameFilter:     in.cfg.GameFilter(),
				SkipPlayByPlay: in.cfg.NoPBP,
				GameWorkers:    in.cfg.GameWorkers,
			},
			in.logger.Named("ingest").With("league", l.Code),
			in.metrics,
		)

		report, err := service.Run(ctx)
		reports = append(reports, report)
		if err != nil {
			in.logger.ErrorContext(ctx, "league ingestion failed", "league", l.Code, "error", err)
			runErr = crerr.CombineErrors(runErr, fmt.Errorf("league %s: %w", l.Code, err))
		}
	}

	return reports, runErr
}

func (in *Ingest) newSource(l league.League) *arena.Source {
	client := arena.NewClient(arena.ClientConfig{
		BaseURL:        in.cfg.ArenaBaseURL,
		Token:          in.cfg.ArenaToken,
		Timeout:        in.cfg.ArenaTimeout,
		MaxRetries:     in.cfg.ArenaMaxRetries,
		Logger:         in.logger.Named("arena"),
		Metrics:        in.metrics,
		CircuitBreaker: in.cfg.ArenaCircuit,
	})
	return arena.NewSource(client, l, in.logger.Named("arena"))
}

func (in *Ingest) Close() error {
	if in.db == nil {
		return nil
	}
	return in.db.Close()
}
