// Package loot generates the supplies found when scavenging a location.
package loot

import (
	"github.com/louisbranch/lastwalk/internal/core/dice"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
)

// MaxDraws is the most items a single scavenge can attempt.
const MaxDraws = 3

// Generate draws between one and MaxDraws items from category's pool.
// Draws are with replacement; a repeated item is dropped rather than
// re-rolled, so the result holds 1..count distinct items in first-seen order.
func Generate(category string, src dice.Source) []string {
	pool := catalog.LootPool(category)
	count := src.Intn(MaxDraws) + 1

	items := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for range count {
		item := pool[src.Intn(len(pool))]
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	return items
}
