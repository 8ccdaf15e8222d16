package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/louisbranch/lastwalk/internal/platform/logging"
	"github.com/louisbranch/lastwalk/internal/services/auth/session"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/location"
	"github.com/louisbranch/lastwalk/internal/services/game/storage/sqlite"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Addr:          "127.0.0.1:0",
		DBPath:        filepath.Join(t.TempDir(), "nested", "game.db"),
		Password:      "apocalypse2024",
		SessionSecret: bytes.Repeat([]byte("s"), session.MinSecretBytes),
		Logger:        logging.Discard(),
	}
}

// TestServeStopsOnContext verifies the server serves and stops on cancel.
func TestServeStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := New(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ctx)
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "ok") {
		t.Fatalf("healthz = %d %s", resp.StatusCode, body)
	}

	resp, err = http.Get("http://" + srv.Addr() + "/api/scenarios")
	if err != nil {
		t.Fatalf("scenarios: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated scenarios = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRunFailsWithoutSessionSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionSecret = []byte("short")
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("expected error for short session secret")
	}
}

func TestNewClosesListenerWhenStoreFails(t *testing.T) {
	var listener net.Listener
	b := newServerBootstrapWithConfig(serverBootstrapConfig{
		listen: func(network, address string) (net.Listener, error) {
			l, err := net.Listen(network, address)
			listener = l
			return l, err
		},
		openStore: func(context.Context, string) (*sqlite.Store, error) {
			return nil, errors.New("disk full")
		},
	})

	if _, err := b.New(context.Background(), testConfig(t)); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("New() error = %v", err)
	}
	if listener == nil {
		t.Fatal("listener was not opened")
	}
	if _, err := listener.Accept(); err == nil {
		t.Fatal("expected closed listener")
	}
}

func TestNewClassifier(t *testing.T) {
	if c := newClassifier(Config{}, logrus.StandardLogger()); c != nil {
		t.Fatalf("expected no classifier without oracle url, got %T", c)
	}

	c := newClassifier(Config{LocationOracleURL: " http://oracle.local/classify ", DefaultLocation: "Gas Station"}, logging.Discard())
	oracle, ok := c.(*location.HTTPOracle)
	if !ok {
		t.Fatalf("classifier = %T, want *location.HTTPOracle", c)
	}
	if oracle.URL != "http://oracle.local/classify" || oracle.Fallback != "gas_station" {
		t.Fatalf("oracle = %+v", oracle)
	}
}

func TestEnsureDir(t *testing.T) {
	if err := ensureDir("game.db"); err != nil {
		t.Fatalf("ensureDir(relative file) error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "a", "b", "game.db")
	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() error = %v", err)
	}
}
