package insight

import (
	"fmt"
	"strings"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// Deterministic is the fixed-text engine.  Given the same inputs it always
// emits the same lines and the same blocks, which makes its output safe to
// diff between pipeline runs.
type Deterministic struct {
	scorer *scoring.Scorer
}

// NewDeterministic builds the deterministic engine for one domain scorer.
func NewDeterministic(scorer *scoring.Scorer) *Deterministic {
	return &Deterministic{scorer: scorer}
}

// Insights renders the ordered finding lines for one province.
func (d *Deterministic) Insights(province string, values scoring.Values, category string, index float64) []string {
	switch d.scorer.Config().Domain {
	case "kesehatan":
		return d.healthInsights(province, values, category, index)
	case "pangan":
		return d.foodInsights(province, values, category, index)
	default:
		return d.educationInsights(province, values, category)
	}
}

func (d *Deterministic) educationInsights(province string, values scoring.Values, category string) []string {
	cfg := d.scorer.Config()
	_, avg := d.scorer.Categorize(values)

	lines := []string{
		fmt.Sprintf("%s berada dalam kategori %s", province, category),
		fmt.Sprintf("Rata-rata APS: %.1f%% (%s)", avg, educationAvgQualifiers[category]),
	}

	for _, level := range educationInsightLabels {
		v, ok := values[level.Key]
		if !ok {
			continue
		}
		ind, _ := cfg.Indicator(level.Key)
		if v < ind.ThresholdGood {
			lines = append(lines, fmt.Sprintf("🎓 %s: %.1f%% (PGI: %.1f%%) - di bawah target %g%%",
				level.Label, v, scoring.Gap(v), ind.ThresholdGood))
		} else {
			lines = append(lines, fmt.Sprintf("✅ %s: %.1f%% - memenuhi target", level.Label, v))
		}
	}

	weri := d.scorer.Composite(values)
	switch {
	case weri > 30:
		lines = append(lines, fmt.Sprintf("📉 WERI: %.1f - Risiko pendidikan tinggi", weri))
	case weri > 20:
		lines = append(lines, fmt.Sprintf("⚠️ WERI: %.1f - Risiko pendidikan sedang", weri))
	default:
		lines = append(lines, fmt.Sprintf("✅ WERI: %.1f - Risiko pendidikan rendah", weri))
	}
	return lines
}

func (d *Deterministic) healthInsights(province string, values scoring.Values, category string, index float64) []string {
	head, ok := healthHeadlines[category]
	if !ok {
		head = healthHeadlines["WASPADA"]
	}
	lines := []string{
		fmt.Sprintf("%s %s dalam kondisi %s - Indeks Kesehatan: %.1f", head.Badge, province, category, index),
		head.Advice,
	}

	for _, ind := range d.scorer.Config().Indicators {
		v, present := values[ind.Key]
		if !present {
			continue
		}
		tier, known := healthTierTexts[ind.Key]
		if !known {
			continue
		}
		switch {
		case v < ind.ThresholdFair:
			if ind.Unit == "%" {
				lines = append(lines, fmt.Sprintf("%s %s: %.1f%% - %s (Target: >%g%%)",
					tier.LowBadge, ind.Name, v, tier.Low, ind.ThresholdGood))
			} else {
				lines = append(lines, fmt.Sprintf("%s %s: %.1f %s - %s (Target: >%g)",
					tier.LowBadge, ind.Name, v, ind.Unit, tier.Low, ind.ThresholdGood))
			}
		case v < ind.ThresholdGood:
			lines = append(lines, formatHealthTier("⚠️", ind, v, tier.Mid))
		default:
			lines = append(lines, formatHealthTier("✅", ind, v, tier.Good))
		}
	}
	return lines
}

func formatHealthTier(badge string, ind scoring.Indicator, v float64, suffix string) string {
	if ind.Unit == "%" {
		return fmt.Sprintf("%s %s: %.1f%% - %s", badge, ind.Name, v, suffix)
	}
	return fmt.Sprintf("%s %s: %.1f %s - %s", badge, ind.Name, v, ind.Unit, suffix)
}

func (d *Deterministic) foodInsights(province string, values scoring.Values, category string, index float64) []string {
	head, ok := foodHeadlines[category]
	if !ok {
		head = foodHeadlines["AGAK TAHAN"]
	}
	prevalence := values[d.scorer.Config().BandIndicatorKey]

	lines := []string{
		fmt.Sprintf("%s %s dalam kondisi %s - IKP: %.1f", head.Badge, province, category, index),
		fmt.Sprintf("Prevalensi ketidakcukupan konsumsi: %.1f%% (%s)", prevalence, head.Level),
		head.Advice,
	}

	switch {
	case prevalence >= 25:
		lines = append(lines, "🔴 Lebih dari 1/4 penduduk mengalami ketidakcukupan konsumsi pangan")
	case prevalence >= 20:
		lines = append(lines, "⚠️ Sekitar 1/5 penduduk mengalami ketidakcukupan konsumsi pangan")
	case prevalence <= 3:
		lines = append(lines, "✨ Prevalensi sangat rendah, mendekati kondisi ideal")
	}
	return lines
}

// Recommendations assembles the headline block of the category followed by
// any value-gated special-focus blocks.
func (d *Deterministic) Recommendations(category string, values scoring.Values) []RecommendationBlock {
	cfg := d.scorer.Config()

	var blocks []RecommendationBlock
	if block, ok := categoryRecommendations[cfg.Domain][category]; ok {
		blocks = append(blocks, block)
	}

	switch cfg.Domain {
	case "pendidikan":
		blocks = appendEducationFocus(blocks, cfg, values)
	case "kesehatan":
		for _, ind := range cfg.Indicators {
			v, present := values[ind.Key]
			if !present || v >= ind.ThresholdFair {
				continue
			}
			if block, ok := healthIndicatorBlocks[ind.Key]; ok {
				blocks = append(blocks, block)
			}
		}
	case "pangan":
		prevalence, present := values[cfg.BandIndicatorKey]
		if present {
			for _, gated := range foodValueBlocks {
				if prevalence >= gated.MinPrevalence {
					blocks = append(blocks, gated.Block)
				}
			}
		}
	}
	return blocks
}

func appendEducationFocus(blocks []RecommendationBlock, cfg scoring.DomainConfig, values scoring.Values) []RecommendationBlock {
	var low []string
	for _, level := range educationFocusOrder {
		v, present := values[level.Key]
		if !present {
			continue
		}
		if ind, ok := cfg.Indicator(level.Key); ok && v < ind.ThresholdGood {
			low = append(low, level.Label)
		}
	}
	if len(low) == 0 {
		return blocks
	}
	return append(blocks, RecommendationBlock{
		Priority: "Khusus",
		Title:    "Fokus pada: " + strings.Join(low, ", "),
		Actions:  educationFocusActions,
	})
}
