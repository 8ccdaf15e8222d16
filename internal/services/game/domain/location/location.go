// Package location classifies map positions into the place categories the
// hazard and loot tables understand (e.g. "supermarket", "hospital").
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/louisbranch/lastwalk/internal/platform/timeouts"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

// Classifier maps a position to a place category.
type Classifier interface {
	Classify(ctx context.Context, pos game.Position) (string, error)
}

// HTTPOracle asks an external service for the category at a position.
//
// It issues GET <URL>?lat=..&lng=.. and expects {"category": "..."}. Any
// failure yields Fallback with a nil error so turns are never blocked on the
// oracle; failures are logged.
type HTTPOracle struct {
	URL      string
	Fallback string
	Client   *http.Client
	Timeout  time.Duration
	Logger   logrus.FieldLogger
}

type oracleResponse struct {
	Category string `json:"category"`
}

// Classify implements Classifier.
func (o *HTTPOracle) Classify(ctx context.Context, pos game.Position) (string, error) {
	fallback := o.Fallback
	if fallback == "" {
		fallback = catalog.DefaultLocation()
	}
	if strings.TrimSpace(o.URL) == "" {
		return fallback, nil
	}

	category, err := o.lookup(ctx, pos)
	if err != nil {
		o.logger().WithError(err).WithField("position", pos.String()).Warn("location oracle failed; using fallback")
		return fallback, nil
	}
	if category == "" {
		return fallback, nil
	}
	return category, nil
}

func (o *HTTPOracle) lookup(ctx context.Context, pos game.Position) (string, error) {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = timeouts.LocationOracle
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := url.Parse(o.URL)
	if err != nil {
		return "", fmt.Errorf("parse oracle url: %w", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(pos.Lat, 'f', 6, 64))
	q.Set("lng", strconv.FormatFloat(pos.Lng, 'f', 6, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build oracle request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call oracle: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle returned %s", resp.Status)
	}

	var body oracleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode oracle response: %w", err)
	}
	return NormalizeCategory(body.Category), nil
}

func (o *HTTPOracle) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// NormalizeCategory lowercases a category and joins words with underscores,
// so "Gas Station" and "gas-station" both become "gas_station".
func NormalizeCategory(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, value)
}
