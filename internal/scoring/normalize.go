package scoring

import "math"

// The normalization tier table maps unbounded raw scores onto the
// [0,1000] display scale. Expressed as data so tiers can be recalibrated
// and tested independently; thresholds are calibrated against typical
// raw magnitudes produced by the built-in format set.
type normalizationTier struct {
	rawMin, rawMax   float64
	normMin, normMax float64
}

var normalizationTiers = []normalizationTier{
	{0, 2000, 0, 200},        // low quality
	{2000, 5000, 200, 400},   // basic
	{5000, 10000, 400, 600},  // good
	{10000, 15000, 600, 800}, // great
	{15000, 25000, 800, 950}, // best
}

// normalizationKnee is the raw score where the log tail takes over.
const normalizationKnee = 25000

// Normalize maps a raw score onto [0,1000]. It is monotonically
// non-decreasing, Normalize(0) == 0, and scores above the top tier
// approach 1000 asymptotically via a logarithmic tail so a single
// outlier format cannot dominate the display scale.
func Normalize(rawScore int) float64 {
	raw := float64(rawScore)
	if raw <= 0 {
		return 0
	}
	for _, tier := range normalizationTiers {
		if raw <= tier.rawMax {
			span := tier.rawMax - tier.rawMin
			fraction := (raw - tier.rawMin) / span
			return tier.normMin + fraction*(tier.normMax-tier.normMin)
		}
	}
	excess := raw - normalizationKnee
	tail := 10 * math.Log10(excess/1000+1)
	if tail > 50 {
		tail = 50
	}
	return 950 + tail
}
