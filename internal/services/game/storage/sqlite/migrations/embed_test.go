package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestGamesFSContainsOrderedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(GamesFS, "games")
	if err != nil {
		t.Fatalf("read games migrations: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least two migrations, got %d", len(entries))
	}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			t.Fatalf("unexpected file %q", entry.Name())
		}
		content, err := fs.ReadFile(GamesFS, "games/"+entry.Name())
		if err != nil {
			t.Fatalf("read %s: %v", entry.Name(), err)
		}
		if !strings.Contains(string(content), "-- +migrate Up") {
			t.Fatalf("%s is missing the Up marker", entry.Name())
		}
	}
}
