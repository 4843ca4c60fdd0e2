package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/waterpolo-pbp/internal/app"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
)

var errUsage = errors.New("usage")

var migrationDirs = []string{"./db/migrations", "/app/db/migrations"}

// command is one migrator verb. args excludes the verb itself.
type command struct {
	usage string
	run   func(m *migrate.Migrate, args []string, out io.Writer, logger *logging.Logger) error
}

var commands = map[string]command{
	"up": {usage: "up", run: func(m *migrate.Migrate, _ []string, _ io.Writer, logger *logging.Logger) error {
		if err := ignoreNoChange(m.Up(), logger); err != nil {
			return err
		}
		logger.Info("ingest schema up to date")
		return nil
	}},
	"down": {usage: "down [steps]", run: func(m *migrate.Migrate, args []string, _ io.Writer, logger *logging.Logger) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Steps(-steps), logger); err != nil {
			return err
		}
		logger.Info("ingest schema rolled back", "steps", steps)
		return nil
	}},
	"version": {usage: "version", run: func(m *migrate.Migrate, _ []string, out io.Writer, _ *logging.Logger) error {
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			_, err = fmt.Fprintln(out, "version: none\ndirty: false")
			return err
		}
		if err != nil {
			return crerr.Wrap(err, "read version")
		}
		_, err = fmt.Fprintf(out, "version: %d\ndirty: %t\n", version, dirty)
		return err
	}},
	"force": {usage: "force <version>", run: func(m *migrate.Migrate, args []string, _ io.Writer, logger *logging.Logger) error {
		if len(args) == 0 {
			return crerr.Wrap(errUsage, "force needs a version")
		}
		version, err := parseVersion(args[0])
		if err != nil {
			return err
		}
		if err := m.Force(version); err != nil {
			return crerr.Wrapf(err, "force version %d", version)
		}
		logger.Info("ingest schema version forced", "version", version)
		return nil
	}},
	"goto": {usage: "goto <version>", run: func(m *migrate.Migrate, args []string, _ io.Writer, logger *logging.Logger) error {
		if len(args) == 0 {
			return crerr.Wrap(errUsage, "goto needs a target version")
		}
		target, err := parseTarget(args[0])
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Migrate(target), logger); err != nil {
			return err
		}
		logger.Info("ingest schema migrated", "version", target)
		return nil
	}},
}

func main() {
	logger := logging.New("dev", logging.LevelInfo)
	code := run(os.Args[1:], os.Stdout, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run returns the process exit code: 2 for usage errors, 1 for failures.
func run(args []string, out io.Writer, logger *logging.Logger) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return 2
	}
	name := strings.ToLower(strings.TrimSpace(args[0]))
	if name == "migrate" {
		name = "goto"
	}
	cmd, ok := commands[name]
	if !ok {
		printUsage(os.Stderr)
		return 2
	}

	dbURL, err := databaseURL()
	if err != nil {
		logger.Error("read database settings", "error", err)
		return 1
	}
	dir, err := findMigrationsDir(os.Getenv("MIGRATIONS_DIR"), os.Getenv("MIGRATIONS_PATH"))
	if err != nil {
		logger.Error("resolve migrations dir", "error", err)
		return 1
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dbURL)
	if err != nil {
		logger.Error("create migrator", "error", err)
		return 1
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := crerr.CombineErrors(srcErr, dbErr); err != nil {
			logger.Warn("close migrator", "error", err)
		}
	}()

	if err := cmd.run(m, args[1:], out, logger.With("command", name)); err != nil {
		logger.Error("migration command failed", "command", name, "error", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// databaseURL reads the same DB settings as the ingest command.
func databaseURL() (string, error) {
	raw := strings.TrimSpace(os.Getenv("DB_URL"))
	if raw == "" {
		return "", errors.New("DB_URL is required")
	}
	disable := true
	if v := strings.TrimSpace(os.Getenv("DB_DISABLE_PREPARED_BINARY_RESULT")); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return "", crerr.Wrap(err, "parse DB_DISABLE_PREPARED_BINARY_RESULT")
		}
		disable = parsed
	}
	return app.NormalizeDBURL(raw, disable), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || steps <= 0 {
		return 0, crerr.Wrapf(errUsage, "down steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0, crerr.Wrapf(errUsage, "version must be a non-negative integer, got %q", raw)
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, crerr.Wrapf(errUsage, "target version must be a non-negative integer, got %q", raw)
	}
	return uint(value), nil
}

// findMigrationsDir returns the first existing directory among the explicit
// settings and the default locations.
func findMigrationsDir(explicit ...string) (string, error) {
	candidates := append(append([]string{}, explicit...), migrationDirs...)
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("no migrations directory among %v", candidates)
}

func printUsage(w io.Writer) {
	names := []string{"up", "down", "version", "force", "goto"}
	fmt.Fprintf(w, "usage: %s <command> [args]\ncommands:\n", filepath.Base(os.Args[0]))
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}
