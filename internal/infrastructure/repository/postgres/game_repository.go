package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	qb "github.com/riskibarqy/waterpolo-pbp/internal/platform/querybuilder"
)

func (s *Sink) UpsertGame(ctx context.Context, item game.Game) (string, error) {
	return s.upsertReturningID(ctx, "games", s.gameModel(item), "edition_public_id", "provider_game_id")
}

func (s *Sink) gameModel(item game.Game) gameTableModel {
	return gameTableModel{
		PublicID:         s.ids.NewID("game", item.EditionID, strconv.FormatInt(item.ProviderID, 10)),
		EditionPublicID:  item.EditionID,
		SeasonPublicID:   item.SeasonID,
		ProviderGameID:   item.ProviderID,
		WebsiteURL:       nullString(item.URL),
		GameDate:         nullTime(item.Date),
		Round:            nullIntPtr(item.Round),
		Status:           nullString(string(item.Status)),
		HomeTeamPublicID: nullString(item.HomeTeamID),
		AwayTeamPublicID: nullString(item.AwayTeamID),
		HomeScore:        nullIntPtr(item.HomeScore),
		AwayScore:        nullIntPtr(item.AwayScore),
		Overtimes:        nullIntPtr(item.Overtimes),
		UpdatedAt:        time.Now().UTC(),
	}
}

// UpsertActions swaps the game's action rows inside one transaction so a
// reader never sees a partially written game.
func (s *Sink) UpsertActions(ctx context.Context, gameID string, actions []action.Action) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin actions tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := qb.DeleteFrom("actions").Where(qb.Eq("game_public_id", gameID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete actions query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete actions of game %s: %w", gameID, err)
	}

	for start := 0; start < len(actions); start += actionBatchSize {
		end := min(start+actionBatchSize, len(actions))
		models := make([]actionTableModel, 0, end-start)
		for _, a := range actions[start:end] {
			models = append(models, actionModel(gameID, a))
		}

		query, args, err = qb.InsertModels("actions", models, "")
		if err != nil {
			return fmt.Errorf("build insert actions query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert actions of game %s: %w", gameID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit actions tx: %w", err)
	}
	return nil
}

// Postgres caps bind parameters at 65535; 19 columns per row.
const actionBatchSize = 1000

func actionModel(gameID string, a action.Action) actionTableModel {
	return actionTableModel{
		GamePublicID:        gameID,
		SeasonPublicID:      a.SeasonID,
		EditionPublicID:     a.EditionID,
		ActionNumber:        a.ActionNumber,
		SourceEventID:       nullString(a.SourceEventID),
		Period:              a.Period,
		RemainingPeriodTime: a.RemainingPeriodTime,
		HomeScore:           a.HomeScore,
		AwayScore:           a.AwayScore,
		Kind:                string(a.Kind),
		TeamPublicID:        nullString(a.TeamID),
		OpponentPublicID:    nullString(a.OpponentID),
		PlayerPublicID:      nullString(a.PlayerID),
		X:                   nullFloatPtr(a.X),
		Y:                   nullFloatPtr(a.Y),
		TargetX:             nullFloatPtr(a.TargetX),
		TargetY:             nullFloatPtr(a.TargetY),
		Flags:               a.Flags.Strings(),
		LinkedActionNumber:  nullIntPtr(a.LinkedActionNumber),
	}
}
