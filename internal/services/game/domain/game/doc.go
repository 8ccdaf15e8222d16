// Package game defines the game aggregate: the survivor's state, the
// positions it moves between and the append-only path it leaves behind.
//
// State values are plain data. The turn engine derives a new State from an
// old one; nothing in this package mutates a State in place.
package game
