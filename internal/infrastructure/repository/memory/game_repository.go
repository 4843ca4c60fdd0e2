package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
)

func (s *Sink) UpsertGame(_ context.Context, item game.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertGame")

	providerID := strconv.FormatInt(item.ProviderID, 10)
	item.ID = s.ids.NewID("game", item.EditionID, providerID)
	s.games[item.ID] = item
	return item.ID, nil
}

func (s *Sink) UpsertActions(_ context.Context, gameID string, actions []action.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count("UpsertActions")

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game %s not stored", gameID)
	}
	stored := make([]action.Action, len(actions))
	copy(stored, actions)
	s.actions[gameID] = stored
	return nil
}

func (s *Sink) Games() []game.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]game.Game, 0, len(s.games))
	for _, item := range s.games {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProviderID < out[j].ProviderID })
	return out
}

func (s *Sink) Actions(gameID string) []action.Action {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.actions[gameID]
	out := make([]action.Action, len(stored))
	copy(out, stored)
	return out
}
