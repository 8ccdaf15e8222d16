// Package requestctx carries the caller's session through a request context.
package requestctx

import "context"

// Session is the authenticated caller state resolved from the session cookie.
type Session struct {
	Authenticated bool
	CurrentGameID string
}

type sessionContextKey struct{}

// WithSession stores the session in context.
func WithSession(ctx context.Context, session Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the session stored in context; the zero Session
// (unauthenticated) when none is present.
func SessionFromContext(ctx context.Context) Session {
	if ctx == nil {
		return Session{}
	}
	value, _ := ctx.Value(sessionContextKey{}).(Session)
	return value
}

// IsAuthenticated reports whether the request carries an authenticated session.
func IsAuthenticated(ctx context.Context) bool {
	return SessionFromContext(ctx).Authenticated
}
