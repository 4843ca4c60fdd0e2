package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	qb "github.com/riskibarqy/waterpolo-pbp/internal/platform/querybuilder"
)

// UpsertPlayerAndContract stores the player identity and its season contract
// together.
func (s *Sink) UpsertPlayerAndContract(ctx context.Context, p player.Player, c player.Contract) (playerID string, err error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin player tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := qb.UpsertModel("players", playerTableModel{
		PublicID:     s.ids.NewID("player", c.TeamID, p.FullName),
		TeamPublicID: c.TeamID,
		Name:         p.Name,
		Surname:      p.Surname,
		FullName:     p.FullName,
		Birthday:     nullTimePtr(p.Birthday),
		HeightCM:     nullIntPtr(p.HeightCM),
		WeightKG:     nullIntPtr(p.WeightKG),
		Hand:         nullString(p.Hand),
		Role:         nullString(p.Role),
		UpdatedAt:    now,
	}, []string{"team_public_id", "full_name"}, "public_id")
	if err != nil {
		return "", fmt.Errorf("build upsert player query: %w", err)
	}
	if err = tx.QueryRowxContext(ctx, query, args...).Scan(&playerID); err != nil {
		return "", fmt.Errorf("upsert player: %w", err)
	}

	query, args, err = qb.UpsertModel("contracts", contractTableModel{
		PlayerPublicID: playerID,
		TeamPublicID:   c.TeamID,
		SeasonPublicID: c.SeasonID,
		JerseyNumber:   nullString(c.JerseyNumber),
		PictureURL:     nullString(c.PictureURL),
		UpdatedAt:      now,
	}, []string{"player_public_id", "team_public_id", "season_public_id"})
	if err != nil {
		return "", fmt.Errorf("build upsert contract query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("upsert contract: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit player tx: %w", err)
	}
	return playerID, nil
}
