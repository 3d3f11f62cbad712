package store

import (
	"sync"

	"amalgam/internal/room"
)

type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*room.Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: map[string]*room.Game{},
	}
}

func (m *MemoryStore) GetGame(code string) (*room.Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[code]
	return g, ok
}

func (m *MemoryStore) SaveGame(g *room.Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.Code] = g
}
