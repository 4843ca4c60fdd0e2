package arena

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/names"
)

// Source serves one catalogued league from the arena API.
type Source struct {
	client *Client
	league league.League
	logger *logging.Logger
	now    func() time.Time
}

func NewSource(client *Client, l league.League, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.Default()
	}
	return &Source{
		client: client,
		league: l,
		logger: logger.With("league", l.Code),
		now:    time.Now,
	}
}

func (s *Source) League(context.Context) (league.League, error) {
	if err := s.league.Validate(); err != nil {
		return league.League{}, err
	}
	return s.league, nil
}

// ListSeasons returns every catalogued season that has started, oldest first.
func (s *Source) ListSeasons(_ context.Context, filter season.Filter) ([]season.Season, error) {
	last := season.LastStartingYear(s.now())

	out := make([]season.Season, 0, len(s.league.Competitions))
	for _, year := range s.league.StartingYears() {
		if year > last {
			continue
		}
		item := season.New(year, s.league.Competitions[year])
		if !filter.Allows(item) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Source) ListGames(ctx context.Context, item season.Season) ([]game.Game, error) {
	competition, err := s.client.FetchCompetition(ctx, item.CompetitionID)
	if err != nil {
		return nil, err
	}

	profiles := make(map[int64]competitionInfo, len(competition.CompetitionTeams))
	for _, t := range competition.CompetitionTeams {
		profiles[t.TeamID] = t.Team
	}

	out := make([]game.Game, 0, len(competition.Matches))
	for _, m := range competition.Matches {
		date, err := parseStartDate(m.StartDate)
		if err != nil {
			s.logger.WarnContext(ctx, "skip match with unreadable start date", "match_id", m.ID, "start_date", m.StartDate)
			continue
		}

		status := mapStatus(m.Status.String())
		if status == game.StatusUnknown {
			s.logger.WarnContext(ctx, "could not recognize game status", "match_id", m.ID, "status", m.Status.String())
		}

		out = append(out, game.Game{
			SeasonID:   item.ID,
			ProviderID: m.ID,
			URL:        GameURLPrefix + strconv.FormatInt(m.ID, 10),
			Date:       date,
			Round:      m.Number.Value,
			Status:     status,
			Home:       teamProfile(m.HomeTeamID, m.HomeTeamDisplayName, profiles),
			Away:       teamProfile(m.AwayTeamID, m.AwayTeamDisplayName, profiles),
			HomeScore:  m.HomeTeamGoalsTotal,
			AwayScore:  m.AwayTeamGoalsTotal,
		})
	}
	return out, nil
}

// ListRawEvents joins the match events with its roster. Events in an unknown
// period are skipped with a warning; references to teams or players missing
// from the match sheet fail the game.
func (s *Source) ListRawEvents(ctx context.Context, _ season.Season, g game.Game) ([]action.RawEvent, error) {
	match, err := s.client.FetchMatch(ctx, g.ProviderID)
	if err != nil {
		return nil, err
	}
	events, err := s.client.FetchEvents(ctx, g.ProviderID)
	if err != nil {
		return nil, err
	}

	sheet := newMatchSheet(g, match)
	out := make([]action.RawEvent, 0, len(events))
	for _, entry := range events {
		period, ok := action.ParsePeriod(entry.Period.String())
		if !ok {
			s.logger.WarnContext(ctx, "could not recognize period", "match_id", g.ProviderID, "event_id", string(entry.ID), "period", entry.Period.String())
			continue
		}

		ev := action.RawEvent{
			ID:                  string(entry.ID),
			Kind:                entry.Type.String(),
			Period:              period,
			RemainingPeriodTime: action.RemainingSeconds(entry.Minute, entry.Seconds),
		}
		if err := sheet.fill(&ev, entry); err != nil {
			return nil, fmt.Errorf("match %d event %s: %w", g.ProviderID, entry.ID, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

type matchSheet struct {
	teams   map[int64]string
	players map[int64]player.Ref
}

func newMatchSheet(g game.Game, match matchResponse) matchSheet {
	sheet := matchSheet{
		teams:   make(map[int64]string, 2),
		players: make(map[int64]player.Ref, len(match.Players)),
	}
	sheet.teams[match.HomeTeam.ID] = g.Home.Name
	sheet.teams[match.AwayTeam.ID] = g.Away.Name

	for _, entry := range match.Players {
		teamName := sheet.teams[entry.Team.ID]
		if teamName == "" {
			switch {
			case names.SameTeam(entry.Team.Name.String(), match.HomeTeam.Name):
				teamName = g.Home.Name
			case names.SameTeam(entry.Team.Name.String(), match.AwayTeam.Name):
				teamName = g.Away.Name
			default:
				teamName = names.Team(entry.Team.Name.String())
			}
		}

		sheet.players[entry.PlayerID] = player.Ref{
			ProviderID:   entry.PlayerID,
			TeamName:     teamName,
			Name:         entry.Player.Name.String(),
			Surname:      entry.Player.Surname.String(),
			Role:         entry.Position.String(),
			Hand:         entry.Player.DominantHand.String(),
			HeightCM:     player.ParseMeasure(entry.Player.Height.String()),
			WeightKG:     player.ParseMeasure(entry.Player.Weight.String()),
			JerseyNumber: entry.Number.String(),
		}
	}
	return sheet
}

func (m matchSheet) team(id int64) (string, error) {
	name, ok := m.teams[id]
	if !ok {
		return "", fmt.Errorf("unknown team id %d", id)
	}
	return name, nil
}

// lookup resolves a reference; a nil reference or a nil id pointer means "no player".
func (m matchSheet) lookup(ref *playerRef, idSet bool) (*player.Ref, error) {
	if ref == nil || !idSet {
		return nil, nil
	}
	p, ok := m.players[ref.PlayerID]
	if !ok {
		return nil, fmt.Errorf("player %d is not on the match sheet", ref.PlayerID)
	}
	if ref.TeamID != 0 {
		if name, known := m.teams[ref.TeamID]; known {
			p.TeamName = name
		}
	}
	return &p, nil
}

func (m matchSheet) fill(ev *action.RawEvent, entry eventItem) (err error) {
	switch ev.Kind {
	case action.EventShot:
		shot := entry.Shot
		if ev.TeamName, err = m.team(shot.TeamID); err != nil {
			return err
		}
		ev.SubType = shot.Type.String()
		ev.IsGoal = shot.IsGoal
		ev.X, ev.Y = shot.LocationX, shot.LocationY
		if ev.Player, err = m.lookup(shot.TakenBy, true); err != nil {
			return err
		}
		if ev.BlockedBy, err = m.lookup(shot.BlockedBy, shot.BlockedByID != nil); err != nil {
			return err
		}
		if ev.AssistedBy, err = m.lookup(shot.AssistedBy, shot.AssistedByID != nil); err != nil {
			return err
		}
		ev.SavedBy, err = m.lookup(shot.SavedBy, shot.SavedByID != nil)
		return err

	case action.EventTurnover:
		to := entry.Turnover
		if ev.TeamName, err = m.team(to.TeamID); err != nil {
			return err
		}
		ev.SubType = to.Type.String()
		if ev.Player, err = m.lookup(to.LostPossesionPlayer, true); err != nil {
			return err
		}
		ev.WonPossession, err = m.lookup(to.WonPossesionPlayer, to.WonPossesionPlayerID != nil)
		return err

	case action.EventExclusion:
		ex := entry.Exclusion
		if ev.TeamName, err = m.team(ex.TeamID); err != nil {
			return err
		}
		ev.PenaltyExclusion = ex.IsPenaltyExclusion
		ev.DoubleExclusion = ex.IsDoubleExclusion
		ev.X, ev.Y = ex.LocationX, ex.LocationY
		if ev.Player, err = m.lookup(ex.ExcludedPlayer, ex.ExcludedPlayerID != nil); err != nil {
			return err
		}
		ev.Fouled, err = m.lookup(ex.FouledPlayer, ex.FouledPlayerID != nil)
		return err

	case action.EventCard:
		card := entry.Card
		if ev.TeamName, err = m.team(card.TeamID); err != nil {
			return err
		}
		ev.CardColor = card.Type.String()
		ev.Player, err = m.lookup(card.CardedPlayer, card.CardedPlayerID != nil)
		return err

	case action.EventTimeout:
		ev.TeamName, err = m.team(entry.Timeout.TeamID)
		return err

	case action.EventSwimOff:
		swim := entry.Swimoff
		if ev.HomeSwimmer, err = m.lookup(swim.HomeTeamSwimmer, true); err != nil {
			return err
		}
		if ev.AwaySwimmer, err = m.lookup(swim.AwayTeamSwimmer, true); err != nil {
			return err
		}
		ev.Winner, err = m.lookup(swim.WinnerSwimmer, true)
		return err
	}

	// Empty and unknown kinds carry no payload; the mapper decides what to do with them.
	return nil
}

func teamProfile(id int64, displayName string, profiles map[int64]competitionInfo) team.Profile {
	info := profiles[id]
	return team.Profile{
		ProviderID:   id,
		Name:         names.Team(displayName),
		Abbreviation: info.ShortName.String(),
		Gender:       info.Gender.String(),
		Category:     info.Category.String(),
		Club:         info.Club.String(),
		City:         info.City.String(),
		Country:      info.Country.String(),
		LogoURL:      info.LogoURL.String(),
	}
}

func mapStatus(raw string) game.Status {
	switch raw {
	case "Finished":
		return game.StatusPlayed
	case "Not_Started":
		return game.StatusScheduled
	case "Live", "In_Progress":
		return game.StatusLive
	default:
		return game.StatusUnknown
	}
}

// parseStartDate reads "2022-11-15T18:30:00+01:00", with or without
// fractional seconds or offset.
func parseStartDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if i := strings.IndexAny(raw, "+Z"); i > 0 {
		raw = raw[:i]
	}
	if i := strings.Index(raw, "."); i > 0 {
		raw = raw[:i]
	}
	return time.Parse("2006-01-02T15:04:05", raw)
}
