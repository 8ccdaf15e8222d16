package gameplay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/storage"
)

// memStore is an in-memory storage.GameStore with the same optimistic
// day check as the SQLite store.
type memStore struct {
	mu      sync.Mutex
	games   map[string]game.State
	paths   map[string][]game.PathEntry
	nextID  int
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{games: make(map[string]game.State), paths: make(map[string][]game.PathEntry)}
}

func (m *memStore) CreateGame(_ context.Context, n game.NewGame) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("game_%d", m.nextID)
	state := game.Start(id, n, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	m.games[id] = state
	m.paths[id] = []game.PathEntry{game.StartEntry(state)}
	return id, nil
}

func (m *memStore) GetGame(_ context.Context, id string) (game.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.games[id]
	if !ok {
		return game.State{}, storage.ErrNotFound
	}
	return state.Clone(), nil
}

func (m *memStore) SaveTurn(_ context.Context, next game.State, entry game.PathEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	current, ok := m.games[next.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if !current.Alive || current.CurrentDay != next.CurrentDay-1 {
		return storage.ErrConcurrentUpdate
	}
	m.games[next.ID] = next.Clone()
	m.paths[next.ID] = append(m.paths[next.ID], entry)
	m.saves++
	return nil
}

func (m *memStore) ListPathEntries(_ context.Context, id string) ([]game.PathEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]game.PathEntry(nil), m.paths[id]...), nil
}

func (m *memStore) ListTerminatedGames(context.Context) ([]game.Recap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.Recap
	for id, state := range m.games {
		if state.Terminal() {
			out = append(out, game.Recap{GameID: id, PlayerName: state.PlayerName, Status: state.Status(), Paths: m.paths[id]})
		}
	}
	return out, nil
}

// put stores state directly, bypassing CreateGame.
func (m *memStore) put(state game.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[state.ID] = state
}
