package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/id"
	qb "github.com/riskibarqy/waterpolo-pbp/internal/platform/querybuilder"
)

// Sink writes canonical rows into postgres. Public ids are derived from the
// natural key so a re-run converges on the same rows.
type Sink struct {
	db  *sqlx.DB
	ids id.Generator
}

func NewSink(db *sqlx.DB, ids id.Generator) *Sink {
	if ids == nil {
		ids = id.NewNameBased()
	}
	return &Sink{db: db, ids: ids}
}

// upsertReturningID runs a single-row upsert of model and returns the stored public id.
func (s *Sink) upsertReturningID(ctx context.Context, table string, model any, conflictColumns ...string) (string, error) {
	query, args, err := qb.UpsertModel(table, model, conflictColumns, "public_id")
	if err != nil {
		return "", fmt.Errorf("build upsert %s query: %w", table, err)
	}

	var publicID string
	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&publicID); err != nil {
		return "", fmt.Errorf("upsert %s: %w", table, err)
	}
	return publicID, nil
}
