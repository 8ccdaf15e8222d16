package storage

import (
	"context"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

// ErrNotFound indicates a requested game is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrConcurrentUpdate indicates the stored game moved on since it was loaded,
// so the turn being saved was resolved against a stale state.
var ErrConcurrentUpdate = apperrors.New(apperrors.CodeGameConcurrentUpdate, "game was updated concurrently")

// GameStore persists games and their paths.
type GameStore interface {
	// CreateGame stores a new game starting on day one together with its
	// "Game started" path entry, returning the generated id.
	CreateGame(ctx context.Context, n game.NewGame) (string, error)
	// GetGame loads a game by id.
	GetGame(ctx context.Context, id string) (game.State, error)
	// SaveTurn replaces the game with next and appends entry, atomically.
	// It fails with ErrConcurrentUpdate unless the stored game is alive and
	// exactly one day behind next.
	SaveTurn(ctx context.Context, next game.State, entry game.PathEntry) error
	// ListPathEntries returns a game's path in creation order.
	ListPathEntries(ctx context.Context, id string) ([]game.PathEntry, error)
	// ListTerminatedGames returns every dead or won game with its path.
	ListTerminatedGames(ctx context.Context) ([]game.Recap, error)
}

// HealthChecker is implemented by stores that can report readiness.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
