package impact

import "fmt"

// Trace step labels in their fixed order.
const (
	StepRadius             = "Radius"
	StepVolume             = "Volume"
	StepMass               = "Mass"
	StepVelocityConversion = "Velocity Conversion"
	StepKineticEnergy      = "Kinetic Energy"
	StepTNTEquivalent      = "TNT Equivalent"
)

// TraceSteps is the number of steps every trace contains.
const TraceSteps = 6

// BuildTrace renders the derivation of p as six ordered steps. Values are
// only formatted, never recomputed.
func BuildTrace(p PhysicalProperties) []DimensionalStep {
	typeLabel := string(p.Type)
	if !p.Type.Known() {
		typeLabel = "unrecognized (default)"
	}
	return []DimensionalStep{
		{
			Step:        StepRadius,
			Equation:    "r = d/2",
			Explanation: fmt.Sprintf("Half of the %.2f m diameter.", p.DiameterM),
			Result:      fmt.Sprintf("%.2f m", p.RadiusM),
		},
		{
			Step:        StepVolume,
			Equation:    "V = (4/3)·π·r³",
			Explanation: "Volume of a sphere with the radius above.",
			Result:      fmt.Sprintf("%.2f m³", p.VolumeM3),
		},
		{
			Step:        StepMass,
			Equation:    "M = ρ·V",
			Explanation: fmt.Sprintf("Density of %.0f kg/m³ for a %s asteroid times its volume.", p.Density, typeLabel),
			Result:      fmt.Sprintf("%.3e kg", p.MassKg),
		},
		{
			Step:        StepVelocityConversion,
			Equation:    "v_ms = v_km·1000",
			Explanation: fmt.Sprintf("Converts %.2f km/s to meters per second before squaring.", p.VelocityKmS),
			Result:      fmt.Sprintf("%.2f m/s", p.VelocityMS),
		},
		{
			Step:        StepKineticEnergy,
			Equation:    "E = 0.5·M·v²",
			Explanation: "Kinetic energy of the mass at the converted velocity.",
			Result:      fmt.Sprintf("%.3e J", p.KineticEnergyJoules),
		},
		{
			Step:        StepTNTEquivalent,
			Equation:    "MT = E / 4.184×10¹⁵",
			Explanation: "One megaton of TNT releases 4.184×10¹⁵ joules.",
			Result:      fmt.Sprintf("%.4f MT", p.KineticEnergyMegatons),
		},
	}
}
