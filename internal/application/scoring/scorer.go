package scoring

import (
	"github.com/teraseg/geoinsight/pkg/errors"
)

// Values maps indicator keys to raw values.  A missing key means "no data";
// callers must never insert zero for an absent measurement.
type Values map[string]float64

// Scorer computes the composite index and category of one domain.
// It is stateless and safe for concurrent use.
type Scorer struct {
	cfg DomainConfig
}

// NewScorer validates cfg and returns a Scorer.
func NewScorer(cfg DomainConfig) (*Scorer, error) {
	if len(cfg.Indicators) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidWeights, "domain has no indicators")
	}
	for _, ind := range cfg.Indicators {
		if ind.Weight <= 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidWeights,
				"indicator %s has non-positive weight %v", ind.Key, ind.Weight)
		}
	}
	if len(cfg.Bands) == 0 {
		return nil, errors.New(errors.ErrCodeNoBandMatch, "domain has no category bands")
	}
	if cfg.BandInput == BandInputIndicator {
		if _, ok := cfg.Indicator(cfg.BandIndicatorKey); !ok {
			return nil, errors.Newf(errors.ErrCodeMissingIndicator,
				"band indicator %q is not declared", cfg.BandIndicatorKey)
		}
	}
	return &Scorer{cfg: cfg}, nil
}

// Config returns the domain configuration the scorer was built from.
func (s *Scorer) Config() DomainConfig { return s.cfg }

// StepScore maps a raw value onto the 100/70/40 tiers of ind.  Reverse
// indicators treat lower values as better.
func StepScore(v float64, ind Indicator) float64 {
	if ind.Reverse {
		switch {
		case v <= ind.ThresholdGood:
			return 100
		case v <= ind.ThresholdFair:
			return 70
		default:
			return 40
		}
	}
	switch {
	case v >= ind.ThresholdGood:
		return 100
	case v >= ind.ThresholdFair:
		return 70
	default:
		return 40
	}
}

// Composite computes the domain's composite index from values.  Missing
// indicators are excluded from both numerator and denominator; when nothing
// is present the composite is 0.
func (s *Scorer) Composite(values Values) float64 {
	switch s.cfg.Composite {
	case CompositeGapWeighted:
		return s.weighted(values, func(v float64, _ Indicator) float64 { return Gap(v) })
	case CompositeStepWeighted:
		return s.weighted(values, StepScore)
	case CompositeLinearPenalty:
		v, ok := values[s.cfg.Indicators[0].Key]
		if !ok {
			return 0
		}
		penalty := 100 - v*s.cfg.PenaltyFactor
		if penalty < 0 {
			penalty = 0
		}
		return Round2(penalty)
	default:
		return 0
	}
}

// weighted averages score(v) over the present indicators, weighted by each
// indicator's share, with the denominator reduced to the weights actually
// present.  The result is order-independent in the value map.
func (s *Scorer) weighted(values Values, score func(float64, Indicator) float64) float64 {
	var sum, weight float64
	for _, ind := range s.cfg.Indicators {
		v, ok := values[ind.Key]
		if !ok {
			continue
		}
		sum += ind.Weight * score(v, ind)
		weight += ind.Weight
	}
	if weight == 0 {
		return 0
	}
	return Round2(sum / weight)
}

// Categorize assigns the category label and the score the band table was
// evaluated on.  A row with no usable indicator gets the domain's documented
// default category with score 0.
func (s *Scorer) Categorize(values Values) (string, float64) {
	switch s.cfg.BandInput {
	case BandInputMean:
		var sum float64
		var n int
		for _, ind := range s.cfg.Indicators {
			if v, ok := values[ind.Key]; ok {
				sum += v
				n++
			}
		}
		if n == 0 {
			return s.cfg.DefaultCategory, 0
		}
		mean := Round2(sum / float64(n))
		return LookupBand(mean, s.cfg.Bands), mean

	case BandInputComposite:
		present := 0
		for _, ind := range s.cfg.Indicators {
			if _, ok := values[ind.Key]; ok {
				present++
			}
		}
		if present == 0 {
			return s.cfg.DefaultCategory, 0
		}
		c := s.Composite(values)
		return LookupBand(c, s.cfg.Bands), c

	case BandInputIndicator:
		v, ok := values[s.cfg.BandIndicatorKey]
		if !ok {
			return s.cfg.DefaultCategory, 0
		}
		return LookupBand(v, s.cfg.Bands), v

	default:
		return s.cfg.DefaultCategory, 0
	}
}

// Gaps returns the per-indicator gap indexes for the present values
// (education PGI data).
func (s *Scorer) Gaps(values Values) map[string]float64 {
	gaps := make(map[string]float64, len(values))
	for _, ind := range s.cfg.Indicators {
		if v, ok := values[ind.Key]; ok {
			gaps[ind.Key] = Gap(v)
		}
	}
	return gaps
}

// StepScores returns the per-indicator step scores for the present values
// (health per-indicator scoring detail).
func (s *Scorer) StepScores(values Values) map[string]float64 {
	scores := make(map[string]float64, len(values))
	for _, ind := range s.cfg.Indicators {
		if v, ok := values[ind.Key]; ok {
			scores[ind.Key] = StepScore(v, ind)
		}
	}
	return scores
}

// Color returns the map color for a category label, or "" when the label is
// not part of the domain.
func (s *Scorer) Color(category string) string {
	return s.cfg.Colors[category]
}

// WorstIndicator returns the key and value of the present indicator that
// performs worst relative to its thresholds, measured by step score first and
// distance from the good threshold as tie-break.  ok is false when no value
// is present.
func (s *Scorer) WorstIndicator(values Values) (Indicator, float64, bool) {
	var (
		worst      Indicator
		worstVal   float64
		worstScore float64
		worstDist  float64
		found      bool
	)
	for _, ind := range s.cfg.Indicators {
		v, ok := values[ind.Key]
		if !ok {
			continue
		}
		score := StepScore(v, ind)
		dist := ind.ThresholdGood - v
		if ind.Reverse {
			dist = v - ind.ThresholdGood
		}
		if !found || score < worstScore || (score == worstScore && dist > worstDist) {
			worst, worstVal, worstScore, worstDist, found = ind, v, score, dist, true
		}
	}
	return worst, worstVal, found
}
