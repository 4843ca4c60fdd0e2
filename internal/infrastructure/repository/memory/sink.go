package memory

import (
	"sync"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/action"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/team"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/id"
)

// Sink keeps every row in memory, keyed by natural key. IDs are derived from
// the natural key, so repeated upserts return the same identity.
type Sink struct {
	mu  sync.RWMutex
	ids id.Generator

	leagues      map[string]league.League
	seasons      map[string]season.Season
	editions     map[string]season.Edition
	participants map[string]season.Participant
	franchises   map[string]team.Franchise
	teams        map[string]team.Team
	games        map[string]game.Game
	actions      map[string][]action.Action
	players      map[string]player.Player
	contracts    map[string]player.Contract

	calls map[string]int
}

func NewSink(ids id.Generator) *Sink {
	if ids == nil {
		ids = id.NewNameBased()
	}

	return &Sink{
		ids:          ids,
		leagues:      make(map[string]league.League),
		seasons:      make(map[string]season.Season),
		editions:     make(map[string]season.Edition),
		participants: make(map[string]season.Participant),
		franchises:   make(map[string]team.Franchise),
		teams:        make(map[string]team.Team),
		games:        make(map[string]game.Game),
		actions:      make(map[string][]action.Action),
		players:      make(map[string]player.Player),
		contracts:    make(map[string]player.Contract),
		calls:        make(map[string]int),
	}
}

// Calls returns how many times the named upsert method ran.
func (s *Sink) Calls(method string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[method]
}

func (s *Sink) count(method string) {
	s.calls[method]++
}
