package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/louisbranch/lastwalk/internal/platform/timeouts"
	"github.com/louisbranch/lastwalk/internal/services/auth/session"
	httpapi "github.com/louisbranch/lastwalk/internal/services/game/api/http"
	"github.com/louisbranch/lastwalk/internal/services/game/gameplay"
	"github.com/louisbranch/lastwalk/internal/services/game/storage/sqlite"
)

// Config holds everything the game server needs at startup.
type Config struct {
	Addr              string
	DBPath            string
	Password          string
	SessionSecret     []byte
	SessionTTL        time.Duration
	SecureCookies     bool
	LocationOracleURL string
	DefaultLocation   string
	Logger            logrus.FieldLogger
}

// Server hosts the lastwalk game API.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      *sqlite.Store
	logger     logrus.FieldLogger
}

// New creates a configured game server listening on cfg.Addr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	return newServerBootstrap().New(ctx, cfg)
}

// New builds a server, releasing anything already opened when a later phase
// fails.
func (b *serverBootstrap) New(ctx context.Context, cfg Config) (server *Server, err error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	sessions, err := session.NewManager(session.Config{
		Password: cfg.Password,
		Secret:   cfg.SessionSecret,
		TTL:      cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("configure sessions: %w", err)
	}

	listener, err := b.config.listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	defer func() {
		if err != nil {
			_ = listener.Close()
		}
	}()

	store, err := b.config.openStore(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = store.Close()
		}
	}()

	opts := []gameplay.Option{gameplay.WithLogger(logger)}
	if classifier := b.config.newClassifier(cfg, logger); classifier != nil {
		opts = append(opts, gameplay.WithClassifier(classifier))
	}
	service := gameplay.NewService(store, opts...)

	handler, err := httpapi.NewHandler(httpapi.Config{
		Service:       service,
		Sessions:      sessions,
		Health:        store,
		Logger:        logger,
		SecureCookies: cfg.SecureCookies,
	})
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:  store,
		logger: logger,
	}, nil
}

// Addr returns the listener address for the game server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a game server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the game server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	s.logger.WithField("addr", s.Addr()).Info("game server listening")
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.WithError(err).Warn("graceful shutdown")
			_ = s.httpServer.Close()
		}
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.WithError(err).Warn("close game store")
	}
}
