// Package storage defines persistence interfaces for the game service.
//
// The turn engine never touches storage directly; the application service
// loads a game.State, resolves a turn, and hands the next state plus its path
// entry back to a GameStore, which persists both atomically.
//
// Common error types:
//   - ErrNotFound: requested game is missing
//   - ErrConcurrentUpdate: another turn was saved first
package storage
