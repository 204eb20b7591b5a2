package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"asteroid-sim/internal/impact"
)

var requiredKeys = []string{
	"isHit",
	"impactProbability",
	"kineticEnergyMegatons",
	"dimensionalProcess",
	"composition",
	"rawMarkdown",
}

// DecodeResult parses a service response body into an AnalysisResult,
// enforcing the required keys and trace shape. The timestamp is left zero.
func DecodeResult(body string) (impact.AnalysisResult, error) {
	body = stripFence(strings.TrimSpace(body))
	if body == "" {
		return impact.AnalysisResult{}, fmt.Errorf("%w: empty response body", ErrExternalService)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return impact.AnalysisResult{}, fmt.Errorf("%w: response is not a JSON object: %w", ErrExternalService, err)
	}
	var missing []string
	for _, k := range requiredKeys {
		if _, ok := fields[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return impact.AnalysisResult{}, fmt.Errorf("%w: response missing keys %s", ErrExternalService, strings.Join(missing, ", "))
	}

	// the timestamp is assigned locally, whatever the service sends
	delete(fields, "timestamp")
	clean, err := json.Marshal(fields)
	if err != nil {
		return impact.AnalysisResult{}, fmt.Errorf("%w: re-encode response: %w", ErrExternalService, err)
	}

	var res impact.AnalysisResult
	if err := json.Unmarshal(clean, &res); err != nil {
		return impact.AnalysisResult{}, fmt.Errorf("%w: response violates schema: %w", ErrExternalService, err)
	}
	if n := len(res.DimensionalProcess); n != impact.TraceSteps {
		return impact.AnalysisResult{}, fmt.Errorf("%w: expected %d trace steps, got %d", ErrExternalService, impact.TraceSteps, n)
	}
	if res.ImpactProbability < 0 || res.ImpactProbability > 100 {
		return impact.AnalysisResult{}, fmt.Errorf("%w: impact probability %v out of range", ErrExternalService, res.ImpactProbability)
	}
	if res.KineticEnergyMegatons < 0 {
		return impact.AnalysisResult{}, fmt.Errorf("%w: negative energy %v", ErrExternalService, res.KineticEnergyMegatons)
	}
	if res.Composition == nil {
		res.Composition = []impact.CompositionElement{}
	}
	return res, nil
}

// stripFence removes a surrounding markdown code fence, which some models
// add even in JSON mode.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
