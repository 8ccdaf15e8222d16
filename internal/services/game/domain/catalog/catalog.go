package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// Tier is the hazard tier of a location category.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// TierRule holds the numbers a hazard check uses for one tier.
type TierRule struct {
	DifficultyClass int     `yaml:"difficulty_class"`
	EncounterChance float64 `yaml:"encounter_chance"`
}

// Scenario is a selectable game setting.
type Scenario struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
	Available   bool   `yaml:"available" json:"available"`
}

// Bounds is a latitude/longitude box.
type Bounds struct {
	North float64 `yaml:"north"`
	South float64 `yaml:"south"`
	East  float64 `yaml:"east"`
	West  float64 `yaml:"west"`
}

// Rules is the parsed rule document.
type Rules struct {
	HorizonDays        int               `yaml:"horizon_days"`
	MaxDailyDistanceKm float64           `yaml:"max_daily_distance_km"`
	DefaultLocation    string            `yaml:"default_location"`
	Tiers              map[Tier]TierRule `yaml:"tiers"`
	Categories         map[Tier][]string `yaml:"categories"`
	Loot               struct {
		Generic []string            `yaml:"generic"`
		Pools   map[string][]string `yaml:"pools"`
	} `yaml:"loot"`
	Scenarios   []Scenario `yaml:"scenarios"`
	StartBounds Bounds     `yaml:"start_bounds"`

	tierByCategory map[string]Tier
}

// Parse decodes and validates a rule document.
func Parse(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	rules.tierByCategory = make(map[string]Tier)
	for tier, categories := range rules.Categories {
		for _, category := range categories {
			rules.tierByCategory[category] = tier
		}
	}
	return &rules, nil
}

func (r *Rules) validate() error {
	if r.HorizonDays <= 1 {
		return fmt.Errorf("horizon_days must be greater than 1")
	}
	if r.MaxDailyDistanceKm <= 0 {
		return fmt.Errorf("max_daily_distance_km must be positive")
	}
	for _, tier := range []Tier{TierLow, TierMedium, TierHigh} {
		rule, ok := r.Tiers[tier]
		if !ok {
			return fmt.Errorf("tier %q is not configured", tier)
		}
		if rule.EncounterChance < 0 || rule.EncounterChance > 1 {
			return fmt.Errorf("tier %q encounter_chance must be within [0,1]", tier)
		}
	}
	if _, ok := r.Categories[TierLow]; ok {
		return fmt.Errorf("low tier is implicit and must not list categories")
	}
	if len(r.Loot.Generic) == 0 {
		return fmt.Errorf("generic loot pool is empty")
	}
	for category, pool := range r.Loot.Pools {
		if len(pool) == 0 {
			return fmt.Errorf("loot pool %q is empty", category)
		}
	}
	seen := make(map[string]struct{}, len(r.Scenarios))
	for _, scenario := range r.Scenarios {
		if strings.TrimSpace(scenario.ID) == "" {
			return fmt.Errorf("scenario id is required")
		}
		if _, dup := seen[scenario.ID]; dup {
			return fmt.Errorf("duplicate scenario %q", scenario.ID)
		}
		seen[scenario.ID] = struct{}{}
	}
	if r.StartBounds.North <= r.StartBounds.South || r.StartBounds.East <= r.StartBounds.West {
		return fmt.Errorf("start_bounds are inverted")
	}
	return nil
}

var loadDefault = sync.OnceValue(func() *Rules {
	rules, err := Parse(rulesYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded rules: %v", err))
	}
	return rules
})

// ValidateEmbedded parses the embedded rules without panicking. Entry points
// call it before serving.
func ValidateEmbedded() error {
	_, err := Parse(rulesYAML)
	return err
}

// Default returns the embedded rules.
func Default() *Rules {
	return loadDefault()
}

// TierOf classifies category. Unknown categories are low.
func (r *Rules) TierOf(category string) Tier {
	if tier, ok := r.tierByCategory[category]; ok {
		return tier
	}
	return TierLow
}

// Rule returns the numbers for tier.
func (r *Rules) Rule(tier Tier) TierRule {
	return r.Tiers[tier]
}

// LootPool returns the item pool for category, or the generic pool.
func (r *Rules) LootPool(category string) []string {
	if pool, ok := r.Loot.Pools[category]; ok {
		return pool
	}
	return r.Loot.Generic
}

// Scenario looks up a scenario by id.
func (r *Rules) Scenario(id string) (Scenario, bool) {
	for _, scenario := range r.Scenarios {
		if scenario.ID == id {
			return scenario, true
		}
	}
	return Scenario{}, false
}

// TierOf classifies category using the embedded rules.
func TierOf(category string) Tier { return Default().TierOf(category) }

// RuleFor returns the embedded numbers for tier.
func RuleFor(tier Tier) TierRule { return Default().Rule(tier) }

// LootPool returns the embedded pool for category.
func LootPool(category string) []string { return Default().LootPool(category) }

// HorizonDays is the day on which a surviving character wins.
func HorizonDays() int { return Default().HorizonDays }

// MaxDailyDistanceKm is the farthest a character may travel in one turn.
func MaxDailyDistanceKm() float64 { return Default().MaxDailyDistanceKm }

// DefaultLocation is the category assumed when none is reported.
func DefaultLocation() string { return Default().DefaultLocation }

// Scenarios returns the embedded scenario list.
func Scenarios() []Scenario {
	out := make([]Scenario, len(Default().Scenarios))
	copy(out, Default().Scenarios)
	return out
}

// StartBounds returns the embedded starting area.
func StartBounds() Bounds { return Default().StartBounds }
