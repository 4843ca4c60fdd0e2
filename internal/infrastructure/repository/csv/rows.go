package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/valyala/bytebufferpool"
)

var (
	gameHeader = []string{
		"season_id", "edition_id", "game_id", "website_id", "date", "round", "status",
		"home_team_id", "away_team_id", "home_score", "away_score",
	}
	teamHeader = []string{
		"team_id", "franchise_id", "season_id", "conference", "gender", "category",
		"name", "abbreviation", "logo_url", "color",
	}
	rosterHeader = []string{
		"player_id", "name", "surname", "full_name", "birthday", "role", "height", "weight",
		"hand", "team_id", "season_id", "jersey_number", "picture_url",
	}
	actionHeader = []string{
		"season_id", "edition_id", "game_id", "action_number", "source_event_id", "period",
		"remaining_period_time", "home_score", "away_score", "description", "team_id",
		"opponent_id", "player_id", "player", "x", "y", "target_x", "target_y", "flags",
		"linked_action_number",
	}
)

// GameID is the natural key of a game row: date plus both team names.
func GameID(g game.Game) string {
	return fmt.Sprintf("%s:%s-%s", g.Date.Format(time.DateOnly), g.Home.CanonicalName(), g.Away.CanonicalName())
}

func (s *Sink) UpsertGame(_ context.Context, g game.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sd, err := s.editionSeason(g.EditionID)
	if err != nil {
		return "", err
	}
	id := GameID(g)
	s.games[id] = g.EditionID
	if !s.markWritten(gamesFile, g.EditionID, id) {
		return id, nil
	}

	row := []string{
		sd.shortKey,
		g.EditionID,
		id,
		strconv.FormatInt(g.ProviderID, 10),
		g.Date.Format(time.DateOnly),
		formatIntPtr(g.Round),
		string(g.Status),
		g.HomeTeamID,
		g.AwayTeamID,
		formatIntPtr(g.HomeScore),
		formatIntPtr(g.AwayScore),
	}
	if err := s.appendRows(sd.path, gamesFile, gameHeader, [][]string{row}); err != nil {
		return "", err
	}
	return id, nil
}

// UpsertActions appends the game's actions once per run. Files are append
// only, so a second call for the same game is ignored.
func (s *Sink) UpsertActions(_ context.Context, gameID string, actions []action.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	editionID, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("unknown game %q", gameID)
	}
	sd, err := s.editionSeason(editionID)
	if err != nil {
		return err
	}
	if len(actions) == 0 || !s.markWritten(playByPlayFile, editionID, gameID) {
		return nil
	}

	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []string{
			sd.shortKey,
			editionID,
			gameID,
			strconv.Itoa(a.ActionNumber),
			a.SourceEventID,
			strconv.Itoa(a.Period),
			strconv.Itoa(a.RemainingPeriodTime),
			strconv.Itoa(a.HomeScore),
			strconv.Itoa(a.AwayScore),
			string(a.Kind),
			a.TeamID,
			a.OpponentID,
			a.PlayerID,
			a.PlayerName,
			s.formatFloatPtr(a.X),
			s.formatFloatPtr(a.Y),
			s.formatFloatPtr(a.TargetX),
			s.formatFloatPtr(a.TargetY),
			strings.Join(a.Flags.Strings(), " "),
			formatIntPtr(a.LinkedActionNumber),
		})
	}
	return s.appendRows(sd.path, playByPlayFile, actionHeader, rows)
}

func (s *Sink) UpsertPlayerAndContract(_ context.Context, p player.Player, c player.Contract) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sd, ok := s.seasons[c.SeasonID]
	if !ok {
		return "", fmt.Errorf("unknown season %q", c.SeasonID)
	}
	id := p.FullName
	if !s.markWritten(rostersFile, c.SeasonID, c.TeamID, id) {
		return id, nil
	}

	var birthday string
	if p.Birthday != nil {
		birthday = p.Birthday.Format(time.DateOnly)
	}
	row := []string{
		id,
		p.Name,
		p.Surname,
		p.FullName,
		birthday,
		p.Role,
		formatIntPtr(p.HeightCM),
		formatIntPtr(p.WeightKG),
		p.Hand,
		c.TeamID,
		sd.shortKey,
		c.JerseyNumber,
		c.PictureURL,
	}
	if err := s.appendRows(sd.path, rostersFile, rosterHeader, [][]string{row}); err != nil {
		return "", err
	}
	return id, nil
}

// appendRows encodes rows into a pooled buffer and appends them with a single
// write. The header is written only when the file is created.
func (s *Sink) appendRows(dir, name string, header []string, rows [][]string) error {
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := stdcsv.NewWriter(buf)
	w.Comma = s.opts.FieldSeparator
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("encode %s header: %w", name, err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode %s rows: %w", name, err)
	}

	if _, err := f.Write(buf.B); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Sink) formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	out := strconv.FormatFloat(*v, 'f', 3, 64)
	if s.opts.DecimalSeparator != '.' {
		out = strings.Replace(out, ".", string(s.opts.DecimalSeparator), 1)
	}
	return out
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
