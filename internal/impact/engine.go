package impact

import (
	"context"
	"fmt"
	"time"

	"asteroid-sim/internal/logging"
)

// Engine produces an AnalysisResult for an input. Implementations must not
// mutate the input.
type Engine interface {
	Name() string
	Analyze(ctx context.Context, in AsteroidInput) (AnalysisResult, error)
}

// Options tunes the deterministic computation.
type Options struct {
	// HitThreshold is the probability cutoff for a hit inside the decay band.
	// Zero or negative selects DefaultHitThreshold.
	HitThreshold float64
	// AllowDegenerate accepts zero diameter or velocity, producing zero results.
	AllowDegenerate bool
	// Now stamps results; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{HitThreshold: DefaultHitThreshold, Now: time.Now}
}

func (o Options) withDefaults() Options {
	if o.HitThreshold <= 0 {
		o.HitThreshold = DefaultHitThreshold
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Analyze runs the full deterministic assessment. It is a pure function of
// its arguments apart from the timestamp.
func Analyze(in AsteroidInput, opts Options) (AnalysisResult, error) {
	if err := Validate(in, opts.AllowDegenerate); err != nil {
		return AnalysisResult{}, err
	}
	opts = opts.withDefaults()

	phys := CalculatePhysics(in.Diameter, in.Velocity, in.Type)
	cls := Classify(in.Distance, opts.HitThreshold)
	summary, markdown, err := Narrate(in, cls, phys)
	if err != nil {
		return AnalysisResult{}, err
	}

	return AnalysisResult{
		IsHit:                 cls.IsHit,
		ImpactProbability:     cls.Probability,
		KineticEnergyMegatons: phys.KineticEnergyMegatons,
		CraterSizeMeters:      phys.CraterDiameterM,
		AnalysisSummary:       summary,
		DimensionalProcess:    BuildTrace(phys),
		Composition:           Composition(in.Type),
		RawMarkdown:           markdown,
		Timestamp:             opts.Now().UTC(),
	}, nil
}

// LocalEngine is the deterministic Engine. An optional pacing delay holds
// the result back; cancelling the context during the delay discards it.
type LocalEngine struct {
	opts  Options
	delay time.Duration
}

// NewLocalEngine creates a LocalEngine.
func NewLocalEngine(opts Options, delay time.Duration) *LocalEngine {
	return &LocalEngine{opts: opts.withDefaults(), delay: delay}
}

// Name implements Engine.
func (e *LocalEngine) Name() string { return "local" }

// Analyze implements Engine.
func (e *LocalEngine) Analyze(ctx context.Context, in AsteroidInput) (AnalysisResult, error) {
	log := logging.FromContext(ctx).With("component", "impact", "engine", e.Name())
	if e.delay > 0 {
		t := time.NewTimer(e.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return AnalysisResult{}, ctx.Err()
		case <-t.C:
		}
	}
	res, err := Analyze(in, e.opts)
	if err != nil {
		log.Debug("analysis rejected", "asteroid", in.Name, "error", err)
		return AnalysisResult{}, fmt.Errorf("local analysis: %w", err)
	}
	log.Debug("analysis complete", "asteroid", in.Name, "probability", res.ImpactProbability, "megatons", res.KineticEnergyMegatons)
	return res, nil
}
