package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/louisbranch/lastwalk/internal/platform/httpx"
	"github.com/louisbranch/lastwalk/internal/platform/requestctx"
	"github.com/louisbranch/lastwalk/internal/services/auth/session"
	"github.com/louisbranch/lastwalk/internal/services/game/api/http/schemas"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/gameplay"
	"github.com/louisbranch/lastwalk/internal/services/game/storage"
)

// GameService is the game behavior the API exposes.
type GameService interface {
	RollCharacter(ctx context.Context) (gameplay.CharacterRoll, error)
	Scenarios() []catalog.Scenario
	CreateGame(ctx context.Context, n game.NewGame) (string, error)
	GetGame(ctx context.Context, gameID string) (game.State, error)
	SubmitMove(ctx context.Context, gameID string, move gameplay.Move) (gameplay.TurnReport, error)
	ListPath(ctx context.Context, gameID string) ([]game.PathEntry, error)
	ListRecaps(ctx context.Context) ([]game.Recap, error)
	Hub() *gameplay.Hub
}

// Config wires the API handler.
type Config struct {
	Service  GameService
	Sessions *session.Manager
	// Health is pinged by /healthz when set.
	Health storage.HealthChecker
	Logger logrus.FieldLogger
	// SecureCookies marks the session cookie Secure.
	SecureCookies bool
}

type handler struct {
	service  GameService
	sessions *session.Manager
	health   storage.HealthChecker
	logger   logrus.FieldLogger
	secure   bool
}

// NewHandler builds the API routes wrapped in request id, panic recovery and
// access logging middleware.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Service == nil {
		return nil, errors.New("game service is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	if err := schemas.Load(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	h := &handler{
		service:  cfg.Service,
		sessions: cfg.Sessions,
		health:   cfg.Health,
		logger:   logger,
		secure:   cfg.SecureCookies,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("GET /api/auth/check", h.handleCheck)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)

	mux.Handle("GET /api/character/roll", h.requireAuth(h.handleRoll))
	mux.Handle("GET /api/scenarios", h.requireAuth(h.handleScenarios))
	mux.Handle("POST /api/game/create", h.requireAuth(h.handleCreateGame))
	mux.Handle("GET /api/game/{gameId}", h.requireAuth(h.handleGetGame))
	mux.Handle("POST /api/game/{gameId}/move", h.requireAuth(h.handleMove))
	mux.Handle("GET /api/game/{gameId}/paths", h.requireAuth(h.handlePaths))
	mux.Handle("GET /api/game/{gameId}/paths/stream", h.requireAuth(h.handleStream))

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(logger),
		httpx.AccessLog(logger),
		h.resolveSession,
	), nil
}

// resolveSession stores the cookie's session in the request context.
func (h *handler) resolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.FromRequest(r)
		next.ServeHTTP(w, r.WithContext(requestctx.WithSession(r.Context(), sess)))
	})
}

func (h *handler) requireAuth(fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requestctx.IsAuthenticated(r.Context()) {
			h.writeError(w, r, session.ErrInvalidToken, nil)
			return
		}
		fn(w, r)
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			h.logger.WithError(err).Warn("health check failed")
			_ = httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
