package bps

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/teraseg/geoinsight/internal/application/scoring"
)

// syntheticValues generates stand-in indicator values when the upstream is
// unavailable.  Values are seeded per province and indicator, so repeated
// runs produce the same substitutes, and drawn from a band around the
// indicator's thresholds so they stay plausible.  Results built on them are
// flagged non-authoritative by the caller.
func syntheticValues(provinces []string, ind scoring.Indicator) map[string]float64 {
	values := make(map[string]float64, len(provinces))
	for _, province := range provinces {
		values[province] = syntheticValue(province, ind)
	}
	return values
}

func syntheticValue(province string, ind scoring.Indicator) float64 {
	h := fnv.New64a()
	h.Write([]byte(province))
	h.Write([]byte{'|'})
	h.Write([]byte(ind.Key))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	lo := math.Min(ind.ThresholdGood, ind.ThresholdFair) * 0.8
	hi := math.Max(ind.ThresholdGood, ind.ThresholdFair) * 1.15
	return scoring.Round2(lo + rng.Float64()*(hi-lo))
}
