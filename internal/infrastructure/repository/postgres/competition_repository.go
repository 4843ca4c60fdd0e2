package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	qb "github.com/riskibarqy/waterpolo-pbp/internal/platform/querybuilder"
)

func (s *Sink) UpsertLeague(ctx context.Context, item league.League) (string, error) {
	return s.upsertReturningID(ctx, "leagues", leagueTableModel{
		PublicID:  s.ids.NewID("league", item.Code),
		Code:      item.Code,
		FullName:  item.FullName,
		Website:   item.Website,
		UpdatedAt: time.Now().UTC(),
	}, "code")
}

func (s *Sink) UpsertSeason(ctx context.Context, item season.Season) (string, error) {
	model := seasonTableModel{
		PublicID:       s.ids.NewID("season", item.LeagueID, item.Key()),
		LeaguePublicID: item.LeagueID,
		SeasonKey:      item.Key(),
		StartYear:      item.StartYear,
		EndYear:        item.EndYear,
		UpdatedAt:      time.Now().UTC(),
	}
	if item.CompetitionID > 0 {
		model.CompetitionID = sql.NullInt64{Int64: item.CompetitionID, Valid: true}
	}
	return s.upsertReturningID(ctx, "seasons", model, "league_public_id", "season_key")
}

func (s *Sink) UpsertEdition(ctx context.Context, item season.Edition) (string, error) {
	return s.upsertReturningID(ctx, "editions", editionTableModel{
		PublicID:         s.ids.NewID("edition", item.LeagueID, item.SeasonID),
		LeaguePublicID:   item.LeagueID,
		SeasonPublicID:   item.SeasonID,
		Periods:          item.Periods,
		PeriodDuration:   item.PeriodDuration,
		ShotClock:        item.ShotClock,
		OvertimeDuration: item.OvertimeDuration,
		UpdatedAt:        time.Now().UTC(),
	}, "league_public_id", "season_public_id")
}

func (s *Sink) UpsertEditionParticipant(ctx context.Context, item season.Participant) error {
	query, args, err := qb.UpsertModel("edition_participants", participantTableModel{
		EditionPublicID: item.EditionID,
		TeamPublicID:    item.TeamID,
	}, []string{"edition_public_id", "team_public_id"})
	if err != nil {
		return fmt.Errorf("build upsert edition participant query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert edition participant: %w", err)
	}
	return nil
}
