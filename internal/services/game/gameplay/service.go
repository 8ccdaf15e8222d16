package gameplay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/random"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/geo"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/location"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/turn"
	"github.com/louisbranch/lastwalk/internal/services/game/storage"
)

const tracerName = "github.com/louisbranch/lastwalk/internal/services/game/gameplay"

// Service runs game operations against a store.
type Service struct {
	store      storage.GameStore
	classifier location.Classifier
	newSeed    random.SeedFunc
	hub        *Hub
	locks      *keyedLocks
	logger     logrus.FieldLogger
	tracer     trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithClassifier sets the classifier consulted when a move reports no
// location category. Without one, unreported categories stay empty.
func WithClassifier(classifier location.Classifier) Option {
	return func(s *Service) { s.classifier = classifier }
}

// WithSeedFunc overrides how per-turn seeds are produced.
func WithSeedFunc(fn random.SeedFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.newSeed = fn
		}
	}
}

// WithHub sets the hub saved path entries are published to.
func WithHub(hub *Hub) Option {
	return func(s *Service) {
		if hub != nil {
			s.hub = hub
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds a Service backed by store.
func NewService(store storage.GameStore, opts ...Option) *Service {
	s := &Service{
		store:   store,
		newSeed: random.NewSeed,
		hub:     NewHub(),
		locks:   newKeyedLocks(),
		logger:  logrus.StandardLogger(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Hub returns the hub turns are published to.
func (s *Service) Hub() *Hub {
	return s.hub
}

// CharacterRoll is a freshly rolled character and a suggested start.
type CharacterRoll struct {
	Attributes character.Attributes
	Modifiers  map[string]int
	Start      game.Position
	Seed       int64
}

// RollCharacter rolls 3d6 for each ability and picks a start inside the
// catalog's starting area.
func (s *Service) RollCharacter(ctx context.Context) (CharacterRoll, error) {
	_, span := s.tracer.Start(ctx, "gameplay.RollCharacter")
	defer span.End()

	seed, err := s.newSeed()
	if err != nil {
		return CharacterRoll{}, s.fail(span, apperrors.Wrap(apperrors.CodeInternal, "generate seed", err))
	}
	src := random.NewSource(seed)
	attrs := character.Generate(src)
	bounds := catalog.StartBounds()
	start := geo.RandomWithin(bounds.North, bounds.South, bounds.East, bounds.West, src.Float64)

	return CharacterRoll{
		Attributes: attrs,
		Modifiers:  attrs.Modifiers(),
		Start:      start,
		Seed:       seed,
	}, nil
}

// Scenarios lists the selectable scenarios.
func (s *Service) Scenarios() []catalog.Scenario {
	return catalog.Scenarios()
}

// CreateGame validates n and stores a new game.
func (s *Service) CreateGame(ctx context.Context, n game.NewGame) (string, error) {
	ctx, span := s.tracer.Start(ctx, "gameplay.CreateGame",
		trace.WithAttributes(attribute.String("game.scenario", n.Scenario)))
	defer span.End()

	n = n.Normalize()
	if err := n.Validate(); err != nil {
		return "", s.fail(span, err)
	}
	gameID, err := s.store.CreateGame(ctx, n)
	if err != nil {
		return "", s.fail(span, apperrors.Wrap(apperrors.CodeInternal, "create game", err))
	}

	span.SetAttributes(attribute.String("game.id", gameID))
	s.logger.WithFields(logrus.Fields{
		"game_id":  gameID,
		"scenario": n.Scenario,
		"player":   n.PlayerName,
	}).Info("game created")
	return gameID, nil
}

// GetGame loads a game.
func (s *Service) GetGame(ctx context.Context, gameID string) (game.State, error) {
	ctx, span := s.tracer.Start(ctx, "gameplay.GetGame",
		trace.WithAttributes(attribute.String("game.id", gameID)))
	defer span.End()

	state, err := s.load(ctx, gameID)
	if err != nil {
		return game.State{}, s.fail(span, err)
	}
	return state, nil
}

// Move is a client's turn request.
type Move struct {
	Target           game.Position
	LocationCategory string
	Action           string
}

// TurnReport is what a client learns from an accepted turn.
type TurnReport struct {
	Outcome turn.Outcome
	State   game.State
	Entry   game.PathEntry
}

// SubmitMove resolves and saves one turn for gameID.
func (s *Service) SubmitMove(ctx context.Context, gameID string, move Move) (TurnReport, error) {
	ctx, span := s.tracer.Start(ctx, "gameplay.SubmitMove",
		trace.WithAttributes(attribute.String("game.id", gameID)))
	defer span.End()

	if err := move.Target.Validate(); err != nil {
		return TurnReport{}, s.fail(span, err)
	}
	action, ok := turn.ParseAction(move.Action)
	if !ok {
		return TurnReport{}, s.fail(span, turn.ErrActionInvalid)
	}

	release := s.locks.lock(gameID)
	defer release()

	state, err := s.load(ctx, gameID)
	if err != nil {
		return TurnReport{}, s.fail(span, err)
	}

	category := location.NormalizeCategory(move.LocationCategory)
	if category == "" && s.classifier != nil {
		category, err = s.classifier.Classify(ctx, move.Target)
		if err != nil {
			s.logger.WithError(err).WithField("game_id", gameID).Warn("classify location")
			category = ""
		}
	}
	if category == "" && move.LocationCategory != "" {
		// A blank category the client did send still counts as reported.
		category = catalog.DefaultLocation()
	}

	seed, err := s.newSeed()
	if err != nil {
		return TurnReport{}, s.fail(span, apperrors.Wrap(apperrors.CodeInternal, "generate seed", err))
	}
	result, err := turn.Resolve(state, turn.Proposal{
		Target:           move.Target,
		LocationCategory: category,
		Action:           action,
	}, random.NewSource(seed))
	if err != nil {
		return TurnReport{}, s.fail(span, err)
	}
	result.Outcome.Seed = seed
	result.Entry.Seed = seed

	if err := s.store.SaveTurn(ctx, result.State, result.Entry); err != nil {
		if errors.Is(err, storage.ErrConcurrentUpdate) || errors.Is(err, storage.ErrNotFound) {
			return TurnReport{}, s.fail(span, err)
		}
		return TurnReport{}, s.fail(span, apperrors.Wrap(apperrors.CodeInternal, "save turn", err))
	}

	span.SetAttributes(
		attribute.Int("game.day", result.Outcome.Day),
		attribute.String("turn.status", string(result.Outcome.Status)),
		attribute.Int64("turn.seed", seed),
	)
	s.logger.WithFields(logrus.Fields{
		"game_id":     gameID,
		"day":         result.Outcome.Day,
		"seed":        seed,
		"category":    result.Outcome.Hazard.Category,
		"encountered": result.Outcome.Hazard.Encountered,
		"status":      result.Outcome.Status,
		"items":       len(result.Outcome.ItemsGained),
	}).Info("turn resolved")

	s.hub.Publish(result.Entry, result.State.Terminal())
	return TurnReport{Outcome: result.Outcome, State: result.State, Entry: result.Entry}, nil
}

// ListPath returns gameID's path in order.
func (s *Service) ListPath(ctx context.Context, gameID string) ([]game.PathEntry, error) {
	ctx, span := s.tracer.Start(ctx, "gameplay.ListPath",
		trace.WithAttributes(attribute.String("game.id", gameID)))
	defer span.End()

	if _, err := s.load(ctx, gameID); err != nil {
		return nil, s.fail(span, err)
	}
	entries, err := s.store.ListPathEntries(ctx, gameID)
	if err != nil {
		return nil, s.fail(span, apperrors.Wrap(apperrors.CodeInternal, "list path", err))
	}
	return entries, nil
}

// ListRecaps returns every finished game with its path.
func (s *Service) ListRecaps(ctx context.Context) ([]game.Recap, error) {
	ctx, span := s.tracer.Start(ctx, "gameplay.ListRecaps")
	defer span.End()

	recaps, err := s.store.ListTerminatedGames(ctx)
	if err != nil {
		return nil, s.fail(span, apperrors.Wrap(apperrors.CodeInternal, "list recaps", err))
	}
	span.SetAttributes(attribute.Int("recap.count", len(recaps)))
	return recaps, nil
}

func (s *Service) load(ctx context.Context, gameID string) (game.State, error) {
	if strings.TrimSpace(gameID) == "" {
		return game.State{}, game.ErrNotFound
	}
	state, err := s.store.GetGame(ctx, gameID)
	if errors.Is(err, storage.ErrNotFound) {
		return game.State{}, game.ErrNotFound
	}
	if err != nil {
		return game.State{}, apperrors.Wrap(apperrors.CodeInternal, fmt.Sprintf("load game %s", gameID), err)
	}
	return state, nil
}

// fail records err on span and returns it unchanged.
func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
