package impact

import (
	"fmt"
	"strings"
	"text/template"
)

// SeverityFor buckets an energy release in megatons.
func SeverityFor(megatons float64) Severity {
	switch {
	case megatons < 1:
		return SeverityLocal
	case megatons < 100:
		return SeverityRegional
	case megatons < 10000:
		return SeverityContinental
	default:
		return SeverityExtinction
	}
}

const (
	statusHit  = "IMPACT LIKELY: the trajectory intersects Earth's danger zone."
	statusMiss = "SAFE PASS: the asteroid is expected to miss Earth."
)

const summaryTemplate = `{{.Name}} is a {{.TypeLabel}} asteroid with a {{printf "%.1f" .Probability}}% impact probability. ` +
	`{{.Status}} Released energy would be {{printf "%.4f" .Megatons}} MT of TNT, a {{.Severity}} scenario.`

const markdownTemplate = `# Impact Assessment: {{.Name}}

**Type:** {{.TypeLabel}}
**Impact probability:** {{printf "%.1f" .Probability}}%
**Status:** {{.Status}}

## Energy
- Kinetic energy: {{printf "%.4f" .Megatons}} MT TNT equivalent
- Estimated crater diameter: {{printf "%.1f" .CraterM}} m
- Severity: **{{.Severity}}**

## Assessment
{{.Summary}}
`

var (
	summaryTpl  = template.Must(template.New("summary").Parse(summaryTemplate))
	markdownTpl = template.Must(template.New("markdown").Parse(markdownTemplate))
)

type narrativeData struct {
	Name        string
	TypeLabel   string
	Probability float64
	Status      string
	Megatons    float64
	CraterM     float64
	Severity    Severity
	Summary     string
}

// Narrate renders the summary and markdown report for a finished analysis.
func Narrate(in AsteroidInput, c Classification, p PhysicalProperties) (summary, markdown string, err error) {
	data := narrativeData{
		Name:        in.Name,
		TypeLabel:   string(in.Type),
		Probability: c.Probability,
		Status:      statusMiss,
		Megatons:    p.KineticEnergyMegatons,
		CraterM:     p.CraterDiameterM,
		Severity:    SeverityFor(p.KineticEnergyMegatons),
	}
	if strings.TrimSpace(data.Name) == "" {
		data.Name = "Unnamed asteroid"
	}
	if data.TypeLabel == "" {
		data.TypeLabel = "unclassified"
	}
	if c.IsHit {
		data.Status = statusHit
	}

	var b strings.Builder
	if err := summaryTpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("render summary: %w", err)
	}
	data.Summary = b.String()

	b.Reset()
	if err := markdownTpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("render report: %w", err)
	}
	return data.Summary, b.String(), nil
}
