// Package game parses game command configuration and starts the HTTP server.
package game

import (
	"context"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	entrypoint "github.com/louisbranch/lastwalk/internal/platform/cmd"
	"github.com/louisbranch/lastwalk/internal/platform/logging"
	"github.com/louisbranch/lastwalk/internal/services/auth/session"
	server "github.com/louisbranch/lastwalk/internal/services/game/app"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/tools/sessionkey"
)

// Config holds game command configuration.
type Config struct {
	Port              int           `env:"LASTWALK_GAME_PORT" envDefault:"8080"`
	Addr              string        `env:"LASTWALK_GAME_ADDR"`
	DBPath            string        `env:"LASTWALK_GAME_DB_PATH" envDefault:"data/game.db"`
	Password          string        `env:"LASTWALK_GAME_PASSWORD" envDefault:"apocalypse2024"`
	SessionSecret     string        `env:"LASTWALK_SESSION_SECRET"`
	SessionTTL        time.Duration `env:"LASTWALK_SESSION_TTL" envDefault:"168h"`
	SecureCookies     bool          `env:"LASTWALK_SECURE_COOKIES"`
	LocationOracleURL string        `env:"LASTWALK_LOCATION_ORACLE_URL"`
	DefaultLocation   string        `env:"LASTWALK_DEFAULT_LOCATION" envDefault:"residential"`
	Logging           logging.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.LocationOracleURL, "location-oracle", cfg.LocationOracleURL, "URL of the location classification service")
	fs.StringVar(&cfg.DefaultLocation, "default-location", cfg.DefaultLocation, "Location category used when the oracle fails")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr resolves the address the server binds to.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}

// Run starts the game HTTP service.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.WithService(logging.New(cfg.Logging, nil), entrypoint.ServiceGame)
	if err := catalog.ValidateEmbedded(); err != nil {
		return fmt.Errorf("validate rule catalog: %w", err)
	}
	secret, err := resolveSecret(cfg.SessionSecret, logger)
	if err != nil {
		return err
	}

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceGame, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:              cfg.ListenAddr(),
			DBPath:            cfg.DBPath,
			Password:          cfg.Password,
			SessionSecret:     secret,
			SessionTTL:        cfg.SessionTTL,
			SecureCookies:     cfg.SecureCookies,
			LocationOracleURL: cfg.LocationOracleURL,
			DefaultLocation:   cfg.DefaultLocation,
			Logger:            logger,
		})
	})
}

// resolveSecret decodes the configured secret. Without one it generates an
// ephemeral secret, so sessions end when the process restarts.
func resolveSecret(value string, logger logrus.FieldLogger) ([]byte, error) {
	if strings.TrimSpace(value) != "" {
		return sessionkey.Decode(value)
	}
	logger.Warnf("%s is not set; using an ephemeral secret", sessionkey.EnvVar)
	return sessionkey.Generate(session.MinSecretBytes, nil)
}
