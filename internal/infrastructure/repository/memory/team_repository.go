package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
)

func (s *Sink) UpsertFranchise(_ context.Context, item team.Franchise) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertFranchise")

	item.ID = s.ids.NewID("franchise", item.Name)
	s.franchises[item.Name] = item
	return item.ID, nil
}

func (s *Sink) UpsertTeam(_ context.Context, item team.Team) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertTeam")

	item.ID = s.ids.NewID("team", item.SeasonID, item.Name)
	s.teams[item.SeasonID+"|"+item.Name] = item
	return item.ID, nil
}

func (s *Sink) Teams() []team.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, 0, len(s.teams))
	for _, item := range s.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonID != out[j].SeasonID {
			return out[i].SeasonID < out[j].SeasonID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Sink) Franchises() []team.Franchise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Franchise, 0, len(s.franchises))
	for _, item := range s.franchises {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
