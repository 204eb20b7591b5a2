// Impact analysis types shared by the local and generative engines
package impact

import "time"

// AsteroidType is the closed set of material classes the engine knows about.
type AsteroidType string

const (
	TypeStony        AsteroidType = "Stony"
	TypeMetallic     AsteroidType = "Metallic"
	TypeIcy          AsteroidType = "Icy"
	TypeCarbonaceous AsteroidType = "Carbonaceous"
)

// AsteroidTypes lists the recognized types in display order.
var AsteroidTypes = []AsteroidType{TypeStony, TypeMetallic, TypeIcy, TypeCarbonaceous}

// Known reports whether t is one of the recognized types.
func (t AsteroidType) Known() bool {
	switch t {
	case TypeStony, TypeMetallic, TypeIcy, TypeCarbonaceous:
		return true
	default:
		return false
	}
}

// AsteroidInput describes the hypothetical asteroid to assess.
type AsteroidInput struct {
	Name     string       `json:"name" yaml:"name"`
	Diameter float64      `json:"diameter" yaml:"diameter"` // meters
	Velocity float64      `json:"velocity" yaml:"velocity"` // km/s
	Distance float64      `json:"distance" yaml:"distance"` // km
	Type     AsteroidType `json:"type" yaml:"type"`
}

// DimensionalStep is one line of the derivation trace.
type DimensionalStep struct {
	Step        string `json:"step"`
	Equation    string `json:"equation"`
	Explanation string `json:"explanation"`
	Result      string `json:"result"`
}

// CompositionElement is one material share of an asteroid type.
type CompositionElement struct {
	Element    string  `json:"element"`
	Percentage float64 `json:"percentage"`
	Fill       string  `json:"fill"`
}

// AnalysisResult is the full output of an engine invocation.
type AnalysisResult struct {
	IsHit                 bool                 `json:"isHit"`
	ImpactProbability     float64              `json:"impactProbability"`
	KineticEnergyMegatons float64              `json:"kineticEnergyMegatons"`
	CraterSizeMeters      float64              `json:"craterSizeMeters"`
	AnalysisSummary       string               `json:"analysisSummary"`
	DimensionalProcess    []DimensionalStep    `json:"dimensionalProcess"`
	Composition           []CompositionElement `json:"composition"`
	RawMarkdown           string               `json:"rawMarkdown"`
	Timestamp             time.Time            `json:"timestamp"`
}

// Severity buckets the released energy.
type Severity string

const (
	SeverityLocal       Severity = "Local Damage"
	SeverityRegional    Severity = "Regional Destruction"
	SeverityContinental Severity = "Continental Catastrophe"
	SeverityExtinction  Severity = "Extinction Event"
)
