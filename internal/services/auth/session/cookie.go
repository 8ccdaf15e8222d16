package session

import (
	"net/http"
	"time"

	"github.com/louisbranch/lastwalk/internal/platform/requestctx"
)

// SetCookie writes the session cookie.
func SetCookie(w http.ResponseWriter, token string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest resolves the session cookie on r. Missing or invalid cookies
// yield the unauthenticated session.
func (m *Manager) FromRequest(r *http.Request) requestctx.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return requestctx.Session{}
	}
	sess, err := m.Parse(cookie.Value)
	if err != nil {
		return requestctx.Session{}
	}
	return sess
}
