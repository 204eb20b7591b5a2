package impact

import "math"

const (
	// DefaultDensity is used for unrecognized asteroid types, kg/m³.
	DefaultDensity = 2500.0
	// TargetDensity approximates Earth's crust for crater scaling, kg/m³.
	TargetDensity = 2500.0
	// Gravity is surface gravitational acceleration, m/s².
	Gravity = 9.81
	// JoulesPerMegaton is the TNT equivalence of one megaton.
	JoulesPerMegaton = 4.184e15

	craterCoefficient    = 1.161
	craterDiameterExp    = 0.78
	craterVelocityExp    = 0.44
	craterGravityExp     = -0.22
	craterDensityRootExp = 1.0 / 3.0
)

// Density returns the bulk density in kg/m³ for an asteroid type.
func Density(t AsteroidType) float64 {
	switch t {
	case TypeStony:
		return 2700
	case TypeMetallic:
		return 7800
	case TypeIcy:
		return 1000
	case TypeCarbonaceous:
		return 2000
	default:
		return DefaultDensity
	}
}

// PhysicalProperties holds every intermediate value of the physical
// calculation. The trace is formatted from these fields only.
type PhysicalProperties struct {
	Type                  AsteroidType
	Density               float64 // kg/m³
	DiameterM             float64
	RadiusM               float64
	VolumeM3              float64
	MassKg                float64
	VelocityKmS           float64
	VelocityMS            float64
	KineticEnergyJoules   float64
	KineticEnergyMegatons float64
	CraterDiameterM       float64
}

// CalculatePhysics derives mass, energy and crater size from diameter (m),
// velocity (km/s) and type. A zero diameter yields all-zero outputs.
func CalculatePhysics(diameter, velocity float64, t AsteroidType) PhysicalProperties {
	p := PhysicalProperties{
		Type:        t,
		Density:     Density(t),
		DiameterM:   diameter,
		VelocityKmS: velocity,
	}
	p.RadiusM = diameter / 2
	p.VolumeM3 = (4.0 / 3.0) * math.Pi * math.Pow(p.RadiusM, 3)
	p.MassKg = p.Density * p.VolumeM3

	// convert before squaring
	p.VelocityMS = velocity * 1000
	p.KineticEnergyJoules = 0.5 * p.MassKg * p.VelocityMS * p.VelocityMS
	p.KineticEnergyMegatons = p.KineticEnergyJoules / JoulesPerMegaton

	p.CraterDiameterM = craterDiameter(p.Density, diameter, p.VelocityMS)
	return p
}

// craterDiameter applies the transient crater scaling law.
func craterDiameter(impactorDensity, diameter, velocityMS float64) float64 {
	return craterCoefficient *
		math.Pow(impactorDensity/TargetDensity, craterDensityRootExp) *
		math.Pow(diameter, craterDiameterExp) *
		math.Pow(velocityMS, craterVelocityExp) *
		math.Pow(Gravity, craterGravityExp)
}
