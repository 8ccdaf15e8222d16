// Package sessionkey generates and decodes the secret that signs session
// cookies.
package sessionkey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/lastwalk/internal/platform/cmd"
	"github.com/louisbranch/lastwalk/internal/services/auth/session"
)

// EnvVar is the variable the game server reads the secret from.
const EnvVar = "LASTWALK_SESSION_SECRET"

// Config holds configuration for key generation.
type Config struct {
	Bytes int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: session.MinSecretBytes}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Generate reads n random bytes from reader, crypto/rand when nil.
func Generate(n int, reader io.Reader) ([]byte, error) {
	if n < session.MinSecretBytes {
		return nil, fmt.Errorf("bytes must be at least %d", session.MinSecretBytes)
	}
	if reader == nil {
		reader = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return nil, fmt.Errorf("generate random bytes: %w", err)
	}
	return buf, nil
}

// Decode parses a hex encoded secret.
func Decode(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.New("session secret is empty")
	}
	secret, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode session secret: %w", err)
	}
	if len(secret) < session.MinSecretBytes {
		return nil, fmt.Errorf("session secret must be at least %d bytes", session.MinSecretBytes)
	}
	return secret, nil
}

// Run generates the key and writes it to out as an env assignment.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	secret, err := Generate(cfg.Bytes, reader)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s=%s\n", EnvVar, hex.EncodeToString(secret))
	return err
}
