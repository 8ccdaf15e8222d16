package turn

import (
	"errors"
	"slices"
	"testing"

	"github.com/louisbranch/lastwalk/internal/core/dice/dicetest"
	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

var denver = game.Position{Lat: 39.7392, Lng: -104.9903}

// nearby is roughly 5.5 km north of denver.
var nearby = game.Position{Lat: 39.7892, Lng: -104.9903}

func activeState() game.State {
	return game.State{
		ID:              "game_1",
		PlayerName:      "Ada",
		Scenario:        "zombie-apocalypse",
		Attributes:      character.Attributes{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10, Charisma: 10},
		CurrentDay:      5,
		Alive:           true,
		CurrentPosition: denver,
		StartPosition:   denver,
		Inventory:       []string{"Water"},
	}
}

func TestResolveRejectsDistance(t *testing.T) {
	state := activeState()
	far := game.Position{Lat: 39.9742, Lng: -104.9903} // ~26 km
	src := &dicetest.Scripted{}

	_, err := Resolve(state, Proposal{Target: far, Action: ActionMove}, src)

	var distErr *DistanceExceededError
	if !errors.As(err, &distErr) {
		t.Fatalf("expected DistanceExceededError, got %v", err)
	}
	if distErr.Limit != 20 || distErr.Distance <= 20 {
		t.Fatalf("unexpected distance error %+v", distErr)
	}
	if got := apperrors.CodeOf(err); got != apperrors.CodeDistanceExceeded {
		t.Fatalf("code = %q", got)
	}
	if state.CurrentDay != 5 || state.CurrentPosition != denver || len(state.Inventory) != 1 {
		t.Fatalf("state mutated: %+v", state)
	}
}

func TestResolveAcceptsNearLimit(t *testing.T) {
	state := activeState()
	// 0.17 degrees of latitude is ~18.9 km.
	target := game.Position{Lat: denver.Lat + 0.17, Lng: denver.Lng}
	src := &dicetest.Scripted{Ints: []int{dicetest.Die(10)}, Floats: []float64{0.99}}
	if _, err := Resolve(state, Proposal{Target: target}, src); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
}

func TestResolveRejectsEndedGames(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*game.State)
	}{
		{"dead", func(s *game.State) { s.Alive = false }},
		{"won", func(s *game.State) { s.CurrentDay = 30 }},
		{"past horizon", func(s *game.State) { s.CurrentDay = 31 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := activeState()
			tt.mutate(&state)
			_, err := Resolve(state, Proposal{Target: nearby}, &dicetest.Scripted{})
			if !errors.Is(err, ErrGameAlreadyEnded) {
				t.Fatalf("Resolve() error = %v, want already ended", err)
			}
			if apperrors.HTTPStatus(err) != 400 {
				t.Fatalf("status = %d", apperrors.HTTPStatus(err))
			}
		})
	}
}

func TestResolveRejectsMissingGameAndBadAction(t *testing.T) {
	_, err := Resolve(game.State{}, Proposal{Target: nearby}, &dicetest.Scripted{})
	if apperrors.CodeOf(err) != apperrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = Resolve(activeState(), Proposal{Target: nearby, Action: "dance"}, &dicetest.Scripted{})
	if !errors.Is(err, ErrActionInvalid) {
		t.Fatalf("expected invalid action, got %v", err)
	}
}

func TestResolveLethalEncounter(t *testing.T) {
	state := activeState()
	// High tier, d20 of 1, encounter draw below 0.60.
	src := &dicetest.Scripted{Ints: []int{dicetest.Die(1)}, Floats: []float64{0.1}}

	res, err := Resolve(state, Proposal{Target: nearby, LocationCategory: "hospital", Action: ActionLoot}, src)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if res.State.Alive {
		t.Fatal("expected survivor to die")
	}
	if res.State.CurrentDay != 6 || res.State.CurrentPosition != nearby {
		t.Fatalf("unexpected next state %+v", res.State)
	}
	if res.Entry.Action != game.ActionKilled || res.Entry.Position != nearby || res.Entry.Day != 6 {
		t.Fatalf("unexpected entry %+v", res.Entry)
	}
	if res.Outcome.Status != StatusDied || len(res.Outcome.ItemsGained) != 0 {
		t.Fatalf("unexpected outcome %+v", res.Outcome)
	}
	if !slices.Equal(res.State.Inventory, []string{"Water"}) {
		t.Fatalf("dead survivor looted: %v", res.State.Inventory)
	}
	if !res.State.Terminal() {
		t.Fatal("expected terminal state")
	}
	if !state.Alive || state.CurrentDay != 5 {
		t.Fatal("input state mutated")
	}
}

func TestResolveSupermarketLoot(t *testing.T) {
	state := activeState()
	// d20 15 vs DC 12, no encounter (0.5 >= 0.30), then three distinct items.
	src := &dicetest.Scripted{
		Ints:   []int{dicetest.Die(15), 2, 0, 3, 4},
		Floats: []float64{0.5},
	}

	res, err := Resolve(state, Proposal{Target: nearby, LocationCategory: "supermarket", Action: ActionLoot}, src)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	wantItems := []string{"Canned Food", "Batteries", "Flashlight"}
	if !slices.Equal(res.Outcome.ItemsGained, wantItems) {
		t.Fatalf("items = %v, want %v", res.Outcome.ItemsGained, wantItems)
	}
	if !slices.Equal(res.State.Inventory, append([]string{"Water"}, wantItems...)) {
		t.Fatalf("inventory = %v", res.State.Inventory)
	}
	if res.Entry.Action != game.ActionLooted {
		t.Fatalf("entry action = %q", res.Entry.Action)
	}
	if res.Outcome.Hazard.Tier != catalog.TierMedium || res.Outcome.Hazard.Encountered {
		t.Fatalf("hazard = %+v", res.Outcome.Hazard)
	}
	if res.Outcome.Status != StatusOngoing || res.Outcome.Day != 6 {
		t.Fatalf("outcome = %+v", res.Outcome)
	}
	if len(state.Inventory) != 1 {
		t.Fatal("input inventory mutated")
	}
	if ints, floats := src.Remaining(); ints != 0 || floats != 0 {
		t.Fatalf("unused draws %d/%d", ints, floats)
	}
}

func TestResolveLootRequiresCategory(t *testing.T) {
	state := activeState()
	// Residential fallback: d20 then encounter draw, and no loot draws.
	src := &dicetest.Scripted{Ints: []int{dicetest.Die(3)}, Floats: []float64{0.5}}

	res, err := Resolve(state, Proposal{Target: nearby, Action: ActionLoot}, src)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(res.Outcome.ItemsGained) != 0 || len(res.State.Inventory) != 1 {
		t.Fatalf("unexpected loot %v", res.Outcome.ItemsGained)
	}
	if res.Outcome.Hazard.Category != "residential" || res.Outcome.Hazard.Tier != catalog.TierLow {
		t.Fatalf("hazard = %+v", res.Outcome.Hazard)
	}
}

func TestResolveMoveIgnoresLoot(t *testing.T) {
	src := &dicetest.Scripted{Ints: []int{dicetest.Die(20)}, Floats: []float64{0.0}}
	res, err := Resolve(activeState(), Proposal{Target: nearby, LocationCategory: "pharmacy"}, src)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Entry.Action != game.ActionMoved || len(res.Outcome.ItemsGained) != 0 {
		t.Fatalf("unexpected move result %+v", res)
	}
	if !res.Outcome.Hazard.Encountered || !res.Outcome.Hazard.Survived {
		t.Fatalf("expected survived encounter, got %+v", res.Outcome.Hazard)
	}
}

func TestResolveVictoryOnHorizon(t *testing.T) {
	state := activeState()
	state.CurrentDay = 29
	src := &dicetest.Scripted{Ints: []int{dicetest.Die(10)}, Floats: []float64{0.9}}

	res, err := Resolve(state, Proposal{Target: nearby}, src)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Outcome.Status != StatusWon || res.State.CurrentDay != 30 {
		t.Fatalf("outcome = %+v", res.Outcome)
	}
	if !res.State.Alive || res.State.Status() != game.StatusWon || !res.State.Terminal() {
		t.Fatalf("unexpected won state %+v", res.State)
	}

	_, err = Resolve(res.State, Proposal{Target: nearby}, &dicetest.Scripted{})
	if !errors.Is(err, ErrGameAlreadyEnded) {
		t.Fatalf("expected ended game, got %v", err)
	}
}

func TestResolveStayInPlace(t *testing.T) {
	src := &dicetest.Scripted{Ints: []int{dicetest.Die(10)}, Floats: []float64{0.9}}
	res, err := Resolve(activeState(), Proposal{Target: denver}, src)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Outcome.DistanceKm != 0 || res.State.CurrentDay != 6 {
		t.Fatalf("unexpected outcome %+v", res.Outcome)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"", ActionMove, true},
		{"move", ActionMove, true},
		{" LOOT ", ActionLoot, true},
		{"rest", "rest", false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseAction(%q) = %q, %v", tt.in, got, ok)
		}
	}
}
