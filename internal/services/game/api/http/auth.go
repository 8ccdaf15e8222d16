package httpapi

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/platform/httpx"
	"github.com/louisbranch/lastwalk/internal/platform/requestctx"
	"github.com/louisbranch/lastwalk/internal/services/auth/session"
	"github.com/louisbranch/lastwalk/internal/services/game/api/http/schemas"
)

type loginRequest struct {
	Password string `json:"password"`
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r, schemas.Login)
	if err != nil {
		h.writeError(w, r, err, map[string]any{"success": false})
		return
	}
	var req loginRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeValidationFailed, "decode login", err), map[string]any{"success": false})
		return
	}
	if err := h.sessions.CheckPassword(req.Password); err != nil {
		h.writeError(w, r, err, map[string]any{"success": false})
		return
	}

	current := requestctx.SessionFromContext(r.Context())
	if !h.issueSession(w, r, current.CurrentGameID) {
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	sess := requestctx.SessionFromContext(r.Context())
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": sess.Authenticated,
		"currentGameId":   sess.CurrentGameID,
	})
}

func (h *handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, h.secure)
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// issueSession sets a fresh session cookie remembering gameID. It writes the
// error response and returns false on failure.
func (h *handler) issueSession(w http.ResponseWriter, r *http.Request, gameID string) bool {
	token, expires, err := h.sessions.Issue(gameID)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeInternal, "issue session", err), nil)
		return false
	}
	session.SetCookie(w, token, expires, h.secure)
	return true
}
