package impact

import (
	"strings"
	"testing"
)

func TestBuildTraceOrder(t *testing.T) {
	steps := BuildTrace(CalculatePhysics(50, 17, TypeStony))
	want := []string{StepRadius, StepVolume, StepMass, StepVelocityConversion, StepKineticEnergy, StepTNTEquivalent}
	if len(steps) != TraceSteps {
		t.Fatalf("expected %d steps, got %d", TraceSteps, len(steps))
	}
	for i, s := range steps {
		if s.Step != want[i] {
			t.Errorf("step %d = %q, want %q", i, s.Step, want[i])
		}
		if s.Equation == "" || s.Explanation == "" || s.Result == "" {
			t.Errorf("step %d has empty fields: %+v", i, s)
		}
	}
}

func TestBuildTraceResultsMatchComputation(t *testing.T) {
	steps := BuildTrace(CalculatePhysics(50, 17, TypeStony))
	want := map[string]string{
		StepRadius:             "25.00 m",
		StepVolume:             "65449.85 m³",
		StepMass:               "1.767e+08 kg",
		StepVelocityConversion: "17000.00 m/s",
		StepKineticEnergy:      "2.554e+16 J",
		StepTNTEquivalent:      "6.1031 MT",
	}
	for _, s := range steps {
		if s.Result != want[s.Step] {
			t.Errorf("%s result = %q, want %q", s.Step, s.Result, want[s.Step])
		}
	}
}

func TestBuildTraceCitesDensity(t *testing.T) {
	mass := BuildTrace(CalculatePhysics(10, 10, TypeMetallic))[2]
	if !strings.Contains(mass.Explanation, "7800 kg/m³") || !strings.Contains(mass.Explanation, "Metallic") {
		t.Fatalf("mass step should cite density and type: %q", mass.Explanation)
	}
	fallback := BuildTrace(CalculatePhysics(10, 10, "Unknown"))[2]
	if !strings.Contains(fallback.Explanation, "2500 kg/m³") {
		t.Fatalf("fallback density not cited: %q", fallback.Explanation)
	}
}

func TestAnalyzeTraceAlwaysSixSteps(t *testing.T) {
	for _, typ := range append(AsteroidTypes, "Unknown") {
		res, err := Analyze(AsteroidInput{Diameter: 3, Velocity: 30, Distance: 1e6, Type: typ}, fixedOptions())
		if err != nil {
			t.Fatalf("Analyze(%s): %v", typ, err)
		}
		if len(res.DimensionalProcess) != TraceSteps {
			t.Fatalf("%s: expected %d steps, got %d", typ, TraceSteps, len(res.DimensionalProcess))
		}
	}
}
