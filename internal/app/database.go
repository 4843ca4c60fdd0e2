package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/waterpolo-pbp/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	preparedBinaryParam = "disable_prepared_binary_result"
	tracedQueryLimit    = 512
	pingTimeout         = 10 * time.Second
)

// OpenDB opens the traced Postgres pool used by the postgres sink.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	conn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", conn,
		otelsql.WithDBName(parseDSN(conn).dbName()),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NormalizeDBURL sets disable_prepared_binary_result=yes when enabled and the
// connection string does not already choose a value. Both URL and key=value
// forms are accepted.
func NormalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}
	d := parseDSN(raw)
	if d.param(preparedBinaryParam) != "" {
		return raw
	}
	return d.with(preparedBinaryParam, "yes")
}

// dsn is a Postgres connection string. u is nil for the key=value form.
type dsn struct {
	raw string
	u   *url.URL
}

func parseDSN(raw string) dsn {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		return dsn{raw: raw, u: u}
	}
	return dsn{raw: raw}
}

func (d dsn) param(key string) string {
	if d.u != nil {
		return d.u.Query().Get(key)
	}
	for _, field := range strings.Fields(d.raw) {
		k, v, ok := strings.Cut(field, "=")
		if ok && k == key {
			return strings.Trim(v, `"'`)
		}
	}
	return ""
}

func (d dsn) with(key, value string) string {
	if d.u == nil {
		if d.raw == "" {
			return key + "=" + value
		}
		return d.raw + " " + key + "=" + value
	}
	u := *d.u
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

func (d dsn) dbName() string {
	if d.u != nil {
		if name := strings.Trim(d.u.Path, "/ "); name != "" {
			return name
		}
	}
	return d.param("dbname")
}

// traceQuery collapses whitespace so multi-line statements read as one span
// attribute, and caps the length without splitting a rune.
func traceQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) <= tracedQueryLimit {
		return query
	}
	cut := tracedQueryLimit
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}
