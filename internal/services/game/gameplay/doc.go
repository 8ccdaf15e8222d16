// Package gameplay is the application layer of the game service.
//
// Service loads a game, resolves a turn with a freshly seeded random source,
// and persists the result. Turns for the same game are serialized in-process
// by a keyed lock, and the store's optimistic day check rejects anything that
// slips past it (for example a second server process). Saved path entries are
// published to a Hub so live followers see each day as it happens.
package gameplay
