// Package session issues and verifies the signed session tokens carried in
// the player's cookie.
//
// A session proves the player entered the shared game password and remembers
// which game they are playing. Tokens are HS256 JWTs.
package session

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/platform/requestctx"
)

const (
	// CookieName is the session cookie name.
	CookieName = "lastwalk_session"
	// DefaultTTL is how long a session stays valid.
	DefaultTTL = 7 * 24 * time.Hour
	// MinSecretBytes is the shortest accepted signing secret.
	MinSecretBytes = 32

	issuer = "lastwalk"
)

var (
	// ErrInvalidPassword indicates a failed login.
	ErrInvalidPassword = apperrors.New(apperrors.CodeUnauthenticated, "invalid password")
	// ErrInvalidToken indicates a missing, malformed, expired or forged token.
	ErrInvalidToken = apperrors.New(apperrors.CodeUnauthenticated, "invalid session")
)

// Config configures a Manager.
type Config struct {
	Password string
	Secret   []byte
	TTL      time.Duration
	Now      func() time.Time
}

// Manager checks passwords and mints session tokens.
type Manager struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

type claims struct {
	jwt.RegisteredClaims
	CurrentGameID string `json:"current_game_id,omitempty"`
}

// NewManager validates cfg and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if strings.TrimSpace(cfg.Password) == "" {
		return nil, errors.New("session password is required")
	}
	if len(cfg.Secret) < MinSecretBytes {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSecretBytes)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{
		password: []byte(cfg.Password),
		secret:   append([]byte(nil), cfg.Secret...),
		ttl:      cfg.TTL,
		now:      cfg.Now,
	}, nil
}

// TTL returns the session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// CheckPassword compares password with the configured one in constant time.
func (m *Manager) CheckPassword(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), m.password) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// Issue signs a token for an authenticated session.
func (m *Manager) Issue(currentGameID string) (string, time.Time, error) {
	now := m.now().UTC()
	expires := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		CurrentGameID: currentGameID,
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies token and returns the session it carries.
func (m *Manager) Parse(token string) (requestctx.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return requestctx.Session{}, ErrInvalidToken
	}
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return requestctx.Session{}, apperrors.Wrap(apperrors.CodeUnauthenticated, "invalid session", err)
	}
	return requestctx.Session{
		Authenticated: true,
		CurrentGameID: parsed.CurrentGameID,
	}, nil
}
