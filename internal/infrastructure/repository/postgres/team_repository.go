package postgres

import (
	"context"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

func (s *Sink) UpsertFranchise(ctx context.Context, item team.Franchise) (string, error) {
	return s.upsertReturningID(ctx, "franchises", franchiseTableModel{
		PublicID:  s.ids.NewID("franchise", item.Name),
		Name:      item.Name,
		City:      nullString(item.City),
		State:     nullString(item.State),
		Country:   nullString(item.Country),
		UpdatedAt: time.Now().UTC(),
	}, "name")
}

func (s *Sink) UpsertTeam(ctx context.Context, item team.Team) (string, error) {
	return s.upsertReturningID(ctx, "teams", teamTableModel{
		PublicID:          s.ids.NewID("team", item.SeasonID, item.Name),
		FranchisePublicID: item.FranchiseID,
		SeasonPublicID:    item.SeasonID,
		Name:              item.Name,
		Abbreviation:      nullString(item.Abbreviation),
		Gender:            nullString(item.Gender),
		Category:          nullString(item.Category),
		LogoURL:           nullString(item.LogoURL),
		Color:             nullString(item.Color),
		UpdatedAt:         time.Now().UTC(),
	}, "season_public_id", "name")
}
