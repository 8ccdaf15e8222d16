package migrations

import "embed"

// GamesFS holds the game store migrations under "games".
//
//go:embed games/*.sql
var GamesFS embed.FS
