// Package gearing holds the pure gear-progression calculations: effective
// item level, equipment set diffing, currency need aggregation and the
// loot-priority ordering. Nothing here touches storage; callers pass in
// snapshots and get derived values back, so every function is safe to call
// concurrently and results are never cached.
package gearing

import (
	"math"
	"sort"
)

// Entry is one equipped piece as seen by the gear level calculation
type Entry struct {
	ItemLevel int
	Weapon    bool
}

// EffectiveItemLevel computes the weapon-weighted average item level of a
// set: weapons count twice in both numerator and denominator, everything
// else once. The result is rounded half away from zero (math.Round).
// An empty set yields 0.
func EffectiveItemLevel(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}

	total := 0
	weight := 0
	for _, e := range entries {
		if e.Weapon {
			total += e.ItemLevel * 2
			weight += 2
		} else {
			total += e.ItemLevel
			weight += 1
		}
	}

	return int(math.Round(float64(total) / float64(weight)))
}

// MissingItems returns the item IDs present in target but absent from
// current, preserving target order. Items are compared by identity, not
// by slot: two different items in the same slot are two different needs.
func MissingItems(target, current []string) []string {
	owned := make(map[string]struct{}, len(current))
	for _, id := range current {
		owned[id] = struct{}{}
	}

	missing := make([]string, 0, len(target))
	for _, id := range target {
		if _, ok := owned[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Requirement is one currency price attached to an item
type Requirement struct {
	Currency string
	Amount   int
}

// AggregateNeeds sums requirement amounts per currency name. Items with no
// requirements contribute nothing, so an all-drop item list yields an
// empty map. No weekly-cap clamping happens here: the result is raw
// demand, and cap-aware scheduling is left to the caller.
func AggregateNeeds(reqs []Requirement) map[string]int {
	needs := make(map[string]int)
	for _, req := range reqs {
		needs[req.Currency] += req.Amount
	}
	return needs
}

// PlayerNeed is one ranked row in the loot-priority ordering.
// TotalNeeded sums amounts across every currency into one scalar; that
// conflates unlike units, but it mirrors how raid leads actually compare
// members and is kept deliberately.
type PlayerNeed struct {
	PlayerID    string
	TotalNeeded int
	ItemsNeeded int
}

// SortByTotalNeed orders needs by total descending. The sort is stable:
// players with equal totals keep the order they were enumerated in.
func SortByTotalNeed(needs []PlayerNeed) {
	sort.SliceStable(needs, func(i, j int) bool {
		return needs[i].TotalNeeded > needs[j].TotalNeeded
	})
}
