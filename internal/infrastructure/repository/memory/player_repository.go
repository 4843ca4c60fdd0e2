package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
)

func (s *Sink) UpsertPlayerAndContract(_ context.Context, p player.Player, c player.Contract) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertPlayerAndContract")

	p.ID = s.ids.NewID("player", c.TeamID, p.FullName)
	s.players[c.TeamID+"|"+p.FullName] = p

	c.PlayerID = p.ID
	s.contracts[p.ID+"|"+c.TeamID+"|"+c.SeasonID] = c
	return p.ID, nil
}

func (s *Sink) Players() []player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(s.players))
	for _, item := range s.players {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

func (s *Sink) Contracts() []player.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Contract, 0, len(s.contracts))
	for _, item := range s.contracts {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}
