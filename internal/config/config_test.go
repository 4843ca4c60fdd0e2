package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Sink != SinkMemory || cfg.Source != SourceArena {
		t.Fatalf("unexpected source/sink %q/%q", cfg.Source, cfg.Sink)
	}
	if len(cfg.Statuses) != 1 || cfg.Statuses[0] != game.StatusPlayed {
		t.Fatalf("expected played-only default, got %v", cfg.Statuses)
	}
	if cfg.GameWorkers != 1 {
		t.Fatalf("expected sequential default, got %d workers", cfg.GameWorkers)
	}
	if cfg.CSVFileSeparator != ',' || cfg.CSVDecimalSeparator != '.' {
		t.Fatalf("unexpected separators %q %q", cfg.CSVFileSeparator, cfg.CSVDecimalSeparator)
	}
	if !cfg.ArenaCircuit.Enabled || cfg.ArenaCircuit.FailureThreshold != 4 {
		t.Fatalf("unexpected circuit defaults %+v", cfg.ArenaCircuit)
	}
}

func TestLoad_IngestSelection(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("INGEST_LEAGUES", "len, wc")
	t.Setenv("INGEST_SEASONS", "22-23,2021-2022")
	t.Setenv("INGEST_STATUSES", "played,scheduled")
	t.Setenv("INGEST_ROUNDS", "1,2")
	t.Setenv("INGEST_GAME_IDS", "4432")
	t.Setenv("INGEST_START_DATE", "2022-10-01")
	t.Setenv("INGEST_END_DATE", "2022-12-31")
	t.Setenv("INGEST_GAME_WORKERS", "4")
	t.Setenv("CSV_FILE_SEPARATOR", ";")
	t.Setenv("CSV_DECIMAL_SEPARATOR", ",")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.Leagues) != 2 || cfg.Leagues[0] != "LEN" || cfg.Leagues[1] != "WC" {
		t.Fatalf("unexpected leagues %v", cfg.Leagues)
	}
	if len(cfg.Seasons) != 2 || cfg.Seasons[0] != "2022-2023" {
		t.Fatalf("unexpected seasons %v", cfg.Seasons)
	}

	filter := cfg.GameFilter()
	if len(filter.Statuses) != 2 || len(filter.Rounds) != 2 || filter.ProviderIDs[0] != 4432 {
		t.Fatalf("unexpected game filter %+v", filter)
	}
	if filter.Start == nil || !filter.Start.Equal(time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %v", filter.Start)
	}
	if cfg.GameWorkers != 4 || cfg.CSVFileSeparator != ';' || cfg.CSVDecimalSeparator != ',' {
		t.Fatalf("unexpected run settings %+v", cfg)
	}
	if !cfg.SeasonFilter().Allows(season.New(2022, 2124)) {
		t.Fatalf("expected 2022-2023 to be selected")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bad season":          {"INGEST_SEASONS": "2022"},
		"bad status":          {"INGEST_STATUSES": "postponed"},
		"bad sink":            {"INGEST_SINK": "kafka"},
		"bad source":          {"INGEST_SOURCE": "scraper"},
		"bad date":            {"INGEST_DATE": "05/10/2022"},
		"end before start":    {"INGEST_START_DATE": "2022-10-02", "INGEST_END_DATE": "2022-10-01"},
		"zero workers":        {"INGEST_GAME_WORKERS": "0"},
		"same separators":     {"CSV_FILE_SEPARATOR": ".", "CSV_DECIMAL_SEPARATOR": "."},
		"long separator":      {"CSV_FILE_SEPARATOR": ";;"},
		"negative retries":    {"ARENA_MAX_RETRIES": "-1"},
		"circuit threshold":   {"ARENA_CIRCUIT_FAILURE_COUNT": "0"},
		"uptrace without dsn": {"UPTRACE_ENABLED": "true", "UPTRACE_DSN": ""},
		"pyroscope no addr":   {"PYROSCOPE_ENABLED": "true"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %v", env)
			}
		})
	}
}

func TestLoad_TabSeparator(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CSV_FILE_SEPARATOR", `\t`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CSVFileSeparator != '\t' {
		t.Fatalf("expected tab separator, got %q", cfg.CSVFileSeparator)
	}
}

func TestLoadCatalog_Default(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	cases := map[string]int64{"LEN": 2124, "WC": 2116, "EC": 2113}
	for code, competition := range cases {
		l, ok := catalog.League(code)
		if !ok {
			t.Fatalf("league %s missing", code)
		}
		if got := l.Competitions[2022]; got != competition {
			t.Fatalf("league %s 2022 competition = %d, want %d", code, got, competition)
		}
	}

	all, err := catalog.Select(nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 leagues, got %d (%v)", len(all), err)
	}
	if _, err := catalog.Select([]string{"NBA"}); err == nil {
		t.Fatalf("expected unknown league error")
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.yaml")
	content := "leagues:\n  - code: abc\n    name: Test League\n    competitions:\n      2021: 10\n      2022: 11\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	l, ok := catalog.League("ABC")
	if !ok {
		t.Fatalf("expected league ABC")
	}
	if years := l.StartingYears(); len(years) != 2 || years[0] != 2021 {
		t.Fatalf("unexpected starting years %v", years)
	}
}

func TestParseCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":         "leagues: []\n",
		"unknown field": "leagues:\n  - code: A\n    name: A\n    colour: red\n",
		"no name":       "leagues:\n  - code: A\n",
		"duplicate":     "leagues:\n  - code: A\n    name: A\n  - code: a\n    name: B\n",
		"bad id":        "leagues:\n  - code: A\n    name: A\n    competitions:\n      2022: 0\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(raw)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
