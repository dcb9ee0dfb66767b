package insight

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// sampleCount is how many actions each pool contributes per block.
const sampleCount = 2

// crisisThreshold is the absolute raw-value level below which the emergency
// block fires.  Reverse indicators are mirrored before the comparison.
const crisisThreshold = 60

// fallbackActions replace a pool that is too small to sample from.
var fallbackActions = []string{
	"Lakukan kajian lanjutan bersama dinas terkait",
	"Tingkatkan pemantauan indikator secara berkala",
}

// Randomized samples its action lists from candidate pools instead of
// emitting them verbatim, so repeated runs over the same data surface
// different subsets of the catalog.  Output is not reproducible unless a
// fixed source is injected.
type Randomized struct {
	det *Deterministic

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomized builds a randomized engine seeded from the clock.
func NewRandomized(scorer *scoring.Scorer) *Randomized {
	return NewRandomizedWithSource(scorer, rand.NewSource(time.Now().UnixNano()))
}

// NewRandomizedWithSource builds a randomized engine over an explicit source.
func NewRandomizedWithSource(scorer *scoring.Scorer, src rand.Source) *Randomized {
	return &Randomized{
		det: NewDeterministic(scorer),
		rng: rand.New(src),
	}
}

// Insights are identical to the deterministic engine's; only the
// recommendation actions are sampled.
func (r *Randomized) Insights(province string, values scoring.Values, category string, index float64) []string {
	return r.det.Insights(province, values, category, index)
}

// Recommendations returns one block whose actions mix two samples from the
// worst indicator's candidate pool with two from the category's general pool,
// plus an emergency block when the worst indicator sits below the crisis
// threshold.
func (r *Randomized) Recommendations(category string, values scoring.Values) []RecommendationBlock {
	cfg := r.det.scorer.Config()

	base, hasBase := categoryRecommendations[cfg.Domain][category]
	if !hasBase {
		base = RecommendationBlock{Priority: "Sedang", Title: "Penguatan Program"}
	}

	worst, worstVal, hasWorst := r.det.scorer.WorstIndicator(values)

	var actions []string
	if hasWorst {
		actions = append(actions, r.sample(r.criticalPool(worst))...)
	}
	actions = append(actions, r.sample(base.Actions)...)

	blocks := []RecommendationBlock{{
		Priority: base.Priority,
		Title:    base.Title,
		Actions:  actions,
	}}

	if hasWorst && mirrored(worstVal, worst) < crisisThreshold {
		blocks = append(blocks, RecommendationBlock{
			Priority: "Darurat",
			Title:    "Penanganan Krisis " + worst.Name,
			Actions: []string{
				fmt.Sprintf("%s berada pada level krisis (%.1f %s); perlu penanganan darurat lintas sektor",
					worst.Name, worstVal, worst.Unit),
			},
		})
	}
	return blocks
}

// criticalPool collects the candidate actions tied to the worst indicator.
func (r *Randomized) criticalPool(worst scoring.Indicator) []string {
	switch r.det.scorer.Config().Domain {
	case "kesehatan":
		return healthIndicatorBlocks[worst.Key].Actions
	case "pangan":
		var pool []string
		for _, gated := range foodValueBlocks {
			pool = append(pool, gated.Block.Actions...)
		}
		return pool
	default:
		return educationFocusActions
	}
}

// sample draws sampleCount actions uniformly without replacement, or the
// static fallback pair when the pool is too small.
func (r *Randomized) sample(pool []string) []string {
	if len(pool) < sampleCount {
		return fallbackActions
	}
	r.mu.Lock()
	perm := r.rng.Perm(len(pool))
	r.mu.Unlock()

	picked := make([]string, 0, sampleCount)
	for _, i := range perm[:sampleCount] {
		picked = append(picked, pool[i])
	}
	return picked
}

// mirrored folds reverse indicators onto the higher-is-better scale so a
// single crisis threshold applies to both directions.
func mirrored(v float64, ind scoring.Indicator) float64 {
	if ind.Reverse {
		return 100 - v
	}
	return v
}
