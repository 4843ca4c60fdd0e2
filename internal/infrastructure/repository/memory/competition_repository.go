package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
)

func (s *Sink) UpsertLeague(_ context.Context, item league.League) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertLeague")

	item.ID = s.ids.NewID("league", item.Code)
	s.leagues[item.Code] = item
	return item.ID, nil
}

func (s *Sink) UpsertSeason(_ context.Context, item season.Season) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertSeason")

	key := item.LeagueID + "|" + item.Key()
	item.ID = s.ids.NewID("season", item.LeagueID, item.Key())
	s.seasons[key] = item
	return item.ID, nil
}

func (s *Sink) UpsertEdition(_ context.Context, item season.Edition) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertEdition")

	key := item.LeagueID + "|" + item.SeasonID
	item.ID = s.ids.NewID("edition", item.LeagueID, item.SeasonID)
	s.editions[key] = item
	return item.ID, nil
}

func (s *Sink) UpsertEditionParticipant(_ context.Context, item season.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertEditionParticipant")

	s.participants[item.EditionID+"|"+item.TeamID] = item
	return nil
}

func (s *Sink) Seasons() []season.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]season.Season, 0, len(s.seasons))
	for _, item := range s.seasons {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartYear < out[j].StartYear })
	return out
}

func (s *Sink) Participants(editionID string) []season.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]season.Participant, 0)
	for _, item := range s.participants {
		if item.EditionID == editionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}
