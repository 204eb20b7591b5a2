package impact

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func approx(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return opts
}

func TestAnalyzeStonyExample(t *testing.T) {
	in := AsteroidInput{Name: "Bennu-like", Diameter: 50, Velocity: 17, Distance: 384400, Type: TypeStony}
	res, err := Analyze(in, fixedOptions())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	phys := CalculatePhysics(in.Diameter, in.Velocity, in.Type)
	if phys.RadiusM != 25 {
		t.Errorf("radius=%f, want 25", phys.RadiusM)
	}
	if !approx(phys.VolumeM3, 65449.85, 1e-6) {
		t.Errorf("volume=%f, want ~65449.85", phys.VolumeM3)
	}
	if !approx(phys.MassKg, 1.767e8, 1e-3) {
		t.Errorf("mass=%e, want ~1.767e8", phys.MassKg)
	}
	if phys.VelocityMS != 17000 {
		t.Errorf("velocity=%f, want 17000", phys.VelocityMS)
	}
	if !approx(phys.KineticEnergyJoules, 2.5535e16, 1e-3) {
		t.Errorf("energy=%e J, want ~2.5535e16", phys.KineticEnergyJoules)
	}
	if !approx(res.KineticEnergyMegatons, 6.1031, 1e-3) {
		t.Errorf("megatons=%f, want ~6.1031", res.KineticEnergyMegatons)
	}
	if res.IsHit || res.ImpactProbability != 0 {
		t.Errorf("expected a miss with 0%% probability, got hit=%v p=%v", res.IsHit, res.ImpactProbability)
	}
	if !strings.Contains(res.RawMarkdown, string(SeverityRegional)) {
		t.Errorf("report missing severity tier: %q", res.RawMarkdown)
	}
	if !res.Timestamp.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("unexpected timestamp %v", res.Timestamp)
	}
}

func TestMassAndEnergyFormulas(t *testing.T) {
	for _, typ := range AsteroidTypes {
		for _, d := range []float64{1, 10, 50, 340, 10000} {
			for _, v := range []float64{0.5, 11, 17, 72} {
				p := CalculatePhysics(d, v, typ)
				wantMass := Density(typ) * ((4.0 / 3.0) * math.Pi * math.Pow(d/2, 3))
				if p.MassKg != wantMass {
					t.Fatalf("%s d=%v: mass=%v, want %v", typ, d, p.MassKg, wantMass)
				}
				wantMT := 0.5 * p.MassKg * (v * 1000) * (v * 1000) / 4.184e15
				if !approx(p.KineticEnergyMegatons, wantMT, 1e-12) {
					t.Fatalf("%s d=%v v=%v: megatons=%v, want %v", typ, d, v, p.KineticEnergyMegatons, wantMT)
				}
			}
		}
	}
}

func TestCraterScaling(t *testing.T) {
	p := CalculatePhysics(50, 17, TypeMetallic)
	want := 1.161 * math.Pow(7800.0/2500.0, 1.0/3.0) * math.Pow(50, 0.78) * math.Pow(17000, 0.44) * math.Pow(9.81, -0.22)
	if !approx(p.CraterDiameterM, want, 1e-12) {
		t.Fatalf("crater=%v, want %v", p.CraterDiameterM, want)
	}
	if CalculatePhysics(100, 17, TypeMetallic).CraterDiameterM <= p.CraterDiameterM {
		t.Fatalf("crater should grow with diameter")
	}
}

func TestDegenerateDiameter(t *testing.T) {
	p := CalculatePhysics(0, 17, TypeStony)
	if p.VolumeM3 != 0 || p.MassKg != 0 || p.KineticEnergyMegatons != 0 || p.CraterDiameterM != 0 {
		t.Fatalf("expected zero outputs, got %+v", p)
	}

	opts := fixedOptions()
	opts.AllowDegenerate = true
	res, err := Analyze(AsteroidInput{Diameter: 0, Velocity: 17, Distance: 1000, Type: TypeStony}, opts)
	if err != nil {
		t.Fatalf("degenerate input rejected: %v", err)
	}
	if res.KineticEnergyMegatons != 0 || res.CraterSizeMeters != 0 {
		t.Fatalf("expected zero results, got %+v", res)
	}
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		in    AsteroidInput
		field string
	}{
		{"zero diameter", AsteroidInput{Diameter: 0, Velocity: 10, Distance: 1}, "diameter"},
		{"negative velocity", AsteroidInput{Diameter: 10, Velocity: -1, Distance: 1}, "velocity"},
		{"negative distance", AsteroidInput{Diameter: 10, Velocity: 10, Distance: -5}, "distance"},
		{"nan diameter", AsteroidInput{Diameter: math.NaN(), Velocity: 10}, "diameter"},
		{"inf velocity", AsteroidInput{Diameter: 10, Velocity: math.Inf(1)}, "velocity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Analyze(tc.in, fixedOptions())
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var ie *InputError
			if !errors.As(err, &ie) || ie.Field != tc.field {
				t.Fatalf("expected InputError on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestAllowDegenerateStillRejectsNegative(t *testing.T) {
	opts := fixedOptions()
	opts.AllowDegenerate = true
	if _, err := Analyze(AsteroidInput{Diameter: -1, Velocity: 1}, opts); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUnrecognizedTypeFallsBack(t *testing.T) {
	in := AsteroidInput{Name: "X", Diameter: 20, Velocity: 10, Distance: 100000, Type: "Plasma"}
	res, err := Analyze(in, fixedOptions())
	if err != nil {
		t.Fatalf("unrecognized type should not fail: %v", err)
	}
	if len(res.Composition) != 0 {
		t.Fatalf("expected empty composition, got %+v", res.Composition)
	}
	if res.Composition == nil {
		t.Fatalf("composition should be an empty list, not nil")
	}
	want := CalculatePhysics(20, 10, TypeStony).MassKg / 2700 * DefaultDensity
	if got := CalculatePhysics(20, 10, "Plasma").MassKg; !approx(got, want, 1e-12) {
		t.Fatalf("mass=%v, want default-density mass %v", got, want)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	in := AsteroidInput{Name: "A", Diameter: 10, Velocity: 5, Distance: 9000, Type: TypeIcy}
	orig := in
	if _, err := Analyze(in, fixedOptions()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if in != orig {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestLocalEngineAnalyze(t *testing.T) {
	eng := NewLocalEngine(fixedOptions(), 0)
	if eng.Name() != "local" {
		t.Fatalf("unexpected name %q", eng.Name())
	}
	res, err := eng.Analyze(context.Background(), AsteroidInput{Name: "Apophis", Diameter: 370, Velocity: 7.4, Distance: 5000, Type: TypeStony})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !res.IsHit || res.ImpactProbability != 100 {
		t.Fatalf("expected certain hit, got %+v", res)
	}
	if _, err := eng.Analyze(context.Background(), AsteroidInput{Diameter: -3, Velocity: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected wrapped ErrInvalidInput, got %v", err)
	}
}

func TestLocalEngineCancelDuringDelay(t *testing.T) {
	eng := NewLocalEngine(fixedOptions(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.Analyze(ctx, AsteroidInput{Diameter: 1, Velocity: 1, Type: TypeStony})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLocalEnginePacingDelay(t *testing.T) {
	eng := NewLocalEngine(fixedOptions(), 20*time.Millisecond)
	start := time.Now()
	if _, err := eng.Analyze(context.Background(), AsteroidInput{Diameter: 1, Velocity: 1, Type: TypeStony}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("expected pacing delay to hold the result back")
	}
}

func TestZeroOptionsUseDefaultThreshold(t *testing.T) {
	in := AsteroidInput{Name: "far pass", Diameter: 50, Velocity: 17, Distance: 45000, Type: TypeStony}
	want, err := Analyze(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	got, err := Analyze(in, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.ImpactProbability != 12 || got.IsHit || got.IsHit != want.IsHit {
		t.Fatalf("zero options: p=%v hit=%v, want p=12 hit=false", got.ImpactProbability, got.IsHit)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("expected timestamp from the default clock")
	}

	res, err := NewLocalEngine(Options{HitThreshold: -5}, 0).Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("LocalEngine.Analyze: %v", err)
	}
	if res.IsHit {
		t.Fatalf("negative threshold should fall back to the default cutoff")
	}
}
