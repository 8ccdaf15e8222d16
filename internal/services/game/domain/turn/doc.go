// Package turn resolves one day of a survivor's journey.
//
// Resolve is a pure function: it receives the full game state, a proposed
// move and a random source, and returns the next state, the path entry to
// append and an outcome summary. It never reads ambient state, performs I/O
// or mutates its input. Every rejection happens before any draw from the
// source, so a rejected proposal leaves both the state and the source
// untouched.
package turn
