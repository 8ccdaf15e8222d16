package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/louisbranch/lastwalk/internal/platform/timeouts"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/location"
	"github.com/louisbranch/lastwalk/internal/services/game/storage/sqlite"
)

// serverBootstrap builds a Server phase by phase.
type serverBootstrap struct {
	config serverBootstrapConfig
}

// serverBootstrapConfig holds per-phase seams for tests.
type serverBootstrapConfig struct {
	listen        func(network, address string) (net.Listener, error)
	openStore     func(ctx context.Context, path string) (*sqlite.Store, error)
	newClassifier func(Config, logrus.FieldLogger) location.Classifier
}

func newServerBootstrap() *serverBootstrap {
	return newServerBootstrapWithConfig(serverBootstrapConfig{})
}

func newServerBootstrapWithConfig(cfg serverBootstrapConfig) *serverBootstrap {
	if cfg.listen == nil {
		cfg.listen = net.Listen
	}
	if cfg.openStore == nil {
		cfg.openStore = openStore
	}
	if cfg.newClassifier == nil {
		cfg.newClassifier = newClassifier
	}
	return &serverBootstrap{config: cfg}
}

// openStore ensures the database directory exists and opens the store.
func openStore(ctx context.Context, path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "game.db")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}

// newClassifier returns the HTTP oracle when a URL is configured. Without one
// the service leaves unreported categories to the engine default.
func newClassifier(cfg Config, logger logrus.FieldLogger) location.Classifier {
	url := strings.TrimSpace(cfg.LocationOracleURL)
	if url == "" {
		return nil
	}
	return &location.HTTPOracle{
		URL:      url,
		Fallback: location.NormalizeCategory(cfg.DefaultLocation),
		Timeout:  timeouts.LocationOracle,
		Logger:   logger,
	}
}
