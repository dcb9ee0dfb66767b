// Package insight turns a province's category and indicator values into
// narrative insight strings and prioritized recommendation blocks.  Two
// strategies exist: a deterministic engine with fixed per-category action
// lists, and a randomized engine that samples actions from candidate pools.
package insight

import (
	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// RecommendationBlock is one prioritized group of policy actions.
type RecommendationBlock struct {
	Priority string   `json:"priority"`
	Title    string   `json:"title"`
	Actions  []string `json:"actions"`
}

// Engine produces narrative insights and recommendations for one province.
type Engine interface {
	// Insights returns ordered human-readable findings.  Numeric values are
	// rendered with one decimal place, matching the rounding the scorer
	// already applied.
	Insights(province string, values scoring.Values, category string, index float64) []string

	// Recommendations returns the ordered recommendation blocks for the
	// category and raw values.
	Recommendations(category string, values scoring.Values) []RecommendationBlock
}

// Strategy names an Engine variant.
type Strategy string

const (
	StrategyDeterministic Strategy = "deterministic"
	StrategyRandomized    Strategy = "randomized"
)

// NewEngine builds the engine for the given strategy.
func NewEngine(strategy Strategy, scorer *scoring.Scorer) Engine {
	if strategy == StrategyRandomized {
		return NewRandomized(scorer)
	}
	return NewDeterministic(scorer)
}
