package impact

import "math"

const (
	// EarthRadiusKm is the mean Earth radius.
	EarthRadiusKm = 6371.0
	// InnerBoundaryKm is the distance below which an impact is certain.
	InnerBoundaryKm = EarthRadiusKm + 2000
	// OuterBoundaryKm is the distance at and beyond which an impact is ruled out.
	OuterBoundaryKm = 50000.0
	// DefaultHitThreshold is the probability (percent) a pass in the decay
	// band must exceed to be classified as a hit.
	DefaultHitThreshold = 60.0
)

// Classification is the output of the probability classifier.
type Classification struct {
	Probability float64 // percent, one decimal
	IsHit       bool
}

// Classify maps a miss distance in km to an impact probability and hit flag.
// threshold is the hit cutoff inside the linear decay band. The hit decision
// is made on the published (rounded) probability, so IsHit always equals
// Probability > threshold inside the band.
func Classify(distance, threshold float64) Classification {
	switch {
	case distance < InnerBoundaryKm:
		return Classification{Probability: 100, IsHit: true}
	case distance < OuterBoundaryKm:
		raw := 100 * (1 - (distance-InnerBoundaryKm)/(OuterBoundaryKm-InnerBoundaryKm))
		p := roundTenth(clamp(raw, 0, 100))
		return Classification{Probability: p, IsHit: p > threshold}
	default:
		return Classification{Probability: 0, IsHit: false}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
