package csv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

const (
	gamesFile      = "games.csv"
	teamsFile      = "teams.csv"
	rostersFile    = "rosters.csv"
	playByPlayFile = "play_by_play.csv"
)

// Options configures the on-disk layout of a Sink.
type Options struct {
	Dir              string
	Append           bool
	FieldSeparator   rune
	DecimalSeparator rune
}

type seasonDir struct {
	path     string
	shortKey string
}

// Sink writes one directory per league and season. Ids are the natural keys
// themselves, so files stay readable without a lookup table.
type Sink struct {
	mu   sync.Mutex
	opts Options

	leagues  map[string]string
	seasons  map[string]seasonDir
	editions map[string]string
	games    map[string]string
	written  map[string]struct{}
}

func NewSink(opts Options) (*Sink, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, fmt.Errorf("csv output directory is required")
	}
	if opts.FieldSeparator == 0 {
		opts.FieldSeparator = ','
	}
	if opts.DecimalSeparator == 0 {
		opts.DecimalSeparator = '.'
	}
	if opts.FieldSeparator == opts.DecimalSeparator {
		return nil, fmt.Errorf("csv field and decimal separators must differ")
	}

	return &Sink{
		opts:     opts,
		leagues:  make(map[string]string),
		seasons:  make(map[string]seasonDir),
		editions: make(map[string]string),
		games:    make(map[string]string),
		written:  make(map[string]struct{}),
	}, nil
}

func (s *Sink) UpsertLeague(_ context.Context, l league.League) (string, error) {
	if l.Code == "" {
		return "", fmt.Errorf("league code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leagues[l.Code] = filepath.Join(s.opts.Dir, l.Code)
	return l.Code, nil
}

// UpsertSeason prepares the season directory. Outside append mode the files
// left by a previous run are removed the first time the season is seen.
func (s *Sink) UpsertSeason(_ context.Context, se season.Season) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leagueDir, ok := s.leagues[se.LeagueID]
	if !ok {
		return "", fmt.Errorf("unknown league %q", se.LeagueID)
	}
	short := se.ShortKey()
	id := se.LeagueID + "/" + short
	if _, seen := s.seasons[id]; seen {
		return id, nil
	}

	dir := filepath.Join(leagueDir, short)
	if !s.opts.Append {
		if err := clearDir(dir); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create season dir %s: %w", dir, err)
	}

	s.seasons[id] = seasonDir{path: dir, shortKey: short}
	return id, nil
}

func (s *Sink) UpsertEdition(_ context.Context, e season.Edition) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sd, ok := s.seasons[e.SeasonID]
	if !ok {
		return "", fmt.Errorf("unknown season %q", e.SeasonID)
	}
	id := sd.shortKey + " " + e.LeagueID
	s.editions[id] = e.SeasonID
	return id, nil
}

func (s *Sink) UpsertFranchise(_ context.Context, f team.Franchise) (string, error) {
	if f.Name == "" {
		return "", fmt.Errorf("franchise name is required")
	}
	return f.Name, nil
}

func (s *Sink) UpsertTeam(_ context.Context, t team.Team) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sd, ok := s.seasons[t.SeasonID]
	if !ok {
		return "", fmt.Errorf("unknown season %q", t.SeasonID)
	}
	id := TeamID(sd.shortKey, t.Name)
	if !s.markWritten(teamsFile, t.SeasonID, id) {
		return id, nil
	}

	row := []string{id, t.FranchiseID, sd.shortKey, "", t.Gender, t.Category, t.Name, t.Abbreviation, t.LogoURL, t.Color}
	if err := s.appendRows(sd.path, teamsFile, teamHeader, [][]string{row}); err != nil {
		return "", err
	}
	return id, nil
}

// TeamID scopes a team to its season; the same club in two seasons is two
// teams with separate rosters.
func TeamID(seasonShortKey, name string) string {
	return seasonShortKey + ":" + name
}

// UpsertEditionParticipant is a no-op: teams.csv already scopes teams to a season.
func (s *Sink) UpsertEditionParticipant(context.Context, season.Participant) error {
	return nil
}

func (s *Sink) markWritten(file string, key ...string) bool {
	k := file + "|" + strings.Join(key, "|")
	if _, dup := s.written[k]; dup {
		return false
	}
	s.written[k] = struct{}{}
	return true
}

func (s *Sink) editionSeason(editionID string) (seasonDir, error) {
	seasonID, ok := s.editions[editionID]
	if !ok {
		return seasonDir{}, fmt.Errorf("unknown edition %q", editionID)
	}
	return s.seasons[seasonID], nil
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read season dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clear season dir %s: %w", dir, err)
		}
	}
	return nil
}
