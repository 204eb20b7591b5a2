package impact

import (
	"math"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		distance float64
		wantP    float64
		wantHit  bool
	}{
		{0, 100, true},
		{6371, 100, true},
		{8370.9, 100, true},
		{8371, 100, true},
		{20000, 72.1, true},
		{30000, 48.0, false},
		{49999, 0, false},
		{50000, 0, false},
		{384400, 0, false},
	}
	for _, tc := range cases {
		got := Classify(tc.distance, DefaultHitThreshold)
		if got.Probability != tc.wantP || got.IsHit != tc.wantHit {
			t.Errorf("Classify(%v)=%+v, want p=%v hit=%v", tc.distance, got, tc.wantP, tc.wantHit)
		}
	}
}

func TestClassifyThresholdOverride(t *testing.T) {
	if Classify(30000, DefaultHitThreshold).IsHit {
		t.Fatalf("48%% should not be a hit at the default cutoff")
	}
	if !Classify(30000, 40).IsHit {
		t.Fatalf("48%% should be a hit with a 40%% cutoff")
	}
	if Classify(20000, 90).IsHit {
		t.Fatalf("72%% should not be a hit with a 90%% cutoff")
	}
	// the cutoff only applies inside the decay band
	if !Classify(100, 100).IsHit {
		t.Fatalf("inner zone is always a hit")
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := Classify(0, DefaultHitThreshold).Probability
	for d := 250.0; d <= 400000; d += 250 {
		p := Classify(d, DefaultHitThreshold).Probability
		if p > prev {
			t.Fatalf("probability increased from %v to %v at %v km", prev, p, d)
		}
		if p < 0 || p > 100 {
			t.Fatalf("probability %v out of range at %v km", p, d)
		}
		prev = p
	}
}

func TestClassifyOneDecimal(t *testing.T) {
	for d := 8371.0; d < 50000; d += 137 {
		p := Classify(d, DefaultHitThreshold).Probability
		if math.Abs(p*10-math.Round(p*10)) > 1e-9 {
			t.Fatalf("probability %v at %v km not rounded to one decimal", p, d)
		}
	}
}

func TestClassifyHitAgreesWithPublishedProbability(t *testing.T) {
	// 25005.9 km is 60.04% before rounding
	got := Classify(25005.9, DefaultHitThreshold)
	if got.Probability != 60 || got.IsHit {
		t.Fatalf("Classify(25005.9)=%+v, want p=60 hit=false", got)
	}
	for d := InnerBoundaryKm; d < OuterBoundaryKm; d += 3.7 {
		c := Classify(d, DefaultHitThreshold)
		if c.IsHit != (c.Probability > DefaultHitThreshold) {
			t.Fatalf("Classify(%v)=%+v: hit flag disagrees with probability", d, c)
		}
	}
}
