// Package server composes the game service for the HTTP entrypoint.
//
// It opens the SQLite store, builds the gameplay service, location classifier
// and session manager, and serves the JSON API until its context ends.
package server
