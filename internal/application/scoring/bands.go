// Package scoring implements the per-domain indicator scorers: gap indexes,
// weighted composites, and threshold-band categorization.  All functions are
// pure; missing values are excluded from weighting, never coerced to zero.
package scoring

import "math"

// Band is one cutoff in a descending threshold table: a value belongs to the
// band when value >= Threshold.  The final band should carry
// math.Inf(-1) as its threshold so every value is categorized.
type Band struct {
	Threshold float64 `json:"threshold"`
	Label     string  `json:"label"`
}

// LookupBand returns the label of the first band, scanned in order, whose
// threshold the value reaches.  Band tables are declared high-to-low, so
// increasing a value can never move it to a later (worse) band.
func LookupBand(value float64, bands []Band) string {
	for _, b := range bands {
		if value >= b.Threshold {
			return b.Label
		}
	}
	if len(bands) > 0 {
		return bands[len(bands)-1].Label
	}
	return ""
}

// Round2 rounds to two decimal places, the precision used for every published
// index value.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, the precision used in narrative insight
// text.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Gap returns the participation-gap index for a raw rate: the rounded
// distance from full coverage.  Callers must not invoke it for missing
// values; absence is handled by exclusion, not by zero.
func Gap(v float64) float64 {
	return Round2(100 - v)
}
