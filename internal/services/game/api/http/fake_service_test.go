package httpapi

import (
	"context"
	"fmt"
	"sync"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/gameplay"
)

// fakeService is an in-memory GameService with scripted turn reports.
type fakeService struct {
	mu       sync.Mutex
	hub      *gameplay.Hub
	games    map[string]game.State
	paths    map[string][]game.PathEntry
	recaps   []game.Recap
	roll     gameplay.CharacterRoll
	report   gameplay.TurnReport
	moveErr  error
	lastMove gameplay.Move
	created  []game.NewGame
}

func newFakeService() *fakeService {
	return &fakeService{
		hub:   gameplay.NewHub(),
		games: make(map[string]game.State),
		paths: make(map[string][]game.PathEntry),
	}
}

func (f *fakeService) RollCharacter(context.Context) (gameplay.CharacterRoll, error) {
	return f.roll, nil
}

func (f *fakeService) Scenarios() []catalog.Scenario {
	return catalog.Scenarios()
}

func (f *fakeService) CreateGame(_ context.Context, n game.NewGame) (string, error) {
	n = n.Normalize()
	if err := n.Validate(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, n)
	id := fmt.Sprintf("game_%03d", len(f.created))
	state := game.Start(id, n, fixedNow)
	f.games[id] = state
	f.paths[id] = []game.PathEntry{game.StartEntry(state)}
	return id, nil
}

func (f *fakeService) GetGame(_ context.Context, gameID string) (game.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.games[gameID]
	if !ok {
		return game.State{}, game.ErrNotFound
	}
	return state, nil
}

func (f *fakeService) SubmitMove(_ context.Context, gameID string, move gameplay.Move) (gameplay.TurnReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastMove = move
	if f.moveErr != nil {
		return gameplay.TurnReport{}, f.moveErr
	}
	if _, ok := f.games[gameID]; !ok {
		return gameplay.TurnReport{}, game.ErrNotFound
	}
	return f.report, nil
}

func (f *fakeService) ListPath(_ context.Context, gameID string) ([]game.PathEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.games[gameID]; !ok {
		return nil, game.ErrNotFound
	}
	return append([]game.PathEntry(nil), f.paths[gameID]...), nil
}

func (f *fakeService) ListRecaps(context.Context) ([]game.Recap, error) {
	return f.recaps, nil
}

func (f *fakeService) Hub() *gameplay.Hub {
	return f.hub
}

func (f *fakeService) appendPath(entry game.PathEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths[entry.GameID] = append(f.paths[entry.GameID], entry)
}

func (f *fakeService) update(gameID string, fn func(*game.State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state := f.games[gameID]
	fn(&state)
	f.games[gameID] = state
}
