// Package metrics exposes Prometheus instrumentation for analysis engines.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"asteroid-sim/internal/impact"
	"asteroid-sim/internal/oracle"
)

const namespace = "impact"

// Outcome label values.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// TypeUnknown is the type label for every unrecognized asteroid type.
const TypeUnknown = "unknown"

// Error kind label values.
const (
	KindInvalidInput    = "invalid_input"
	KindExternalService = "external_service"
	KindCanceled        = "canceled"
	KindOther           = "other"
)

// Collector holds the analysis metrics in its own registry.
type Collector struct {
	registry *prometheus.Registry

	analyses *prometheus.CounterVec
	duration *prometheus.HistogramVec
	energy   prometheus.Histogram
	errors   *prometheus.CounterVec
}

// NewCollector creates and registers all analysis metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total analyses by engine, asteroid type and outcome",
		}, []string{"engine", "type", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent producing an analysis",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"engine"}),
		energy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "energy_megatons",
			Help:      "Distribution of kinetic energy of analysed asteroids in megatons TNT",
			Buckets:   prometheus.ExponentialBuckets(0.001, 10, 10),
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_errors_total",
			Help:      "Failed analyses by engine and error kind",
		}, []string{"engine", "kind"}),
	}
	c.registry.MustRegister(
		c.analyses,
		c.duration,
		c.energy,
		c.errors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Observe records one finished analysis.
func (c *Collector) Observe(engine string, in impact.AsteroidInput, res impact.AnalysisResult, err error, took time.Duration) {
	c.duration.WithLabelValues(engine).Observe(took.Seconds())
	typ := typeLabel(in.Type)
	if err != nil {
		c.analyses.WithLabelValues(engine, typ, OutcomeError).Inc()
		c.errors.WithLabelValues(engine, ErrorKind(err)).Inc()
		return
	}
	outcome := OutcomeMiss
	if res.IsHit {
		outcome = OutcomeHit
	}
	c.analyses.WithLabelValues(engine, typ, outcome).Inc()
	c.energy.Observe(res.KineticEnergyMegatons)
}

// typeLabel bounds the type label to the recognized classes plus TypeUnknown.
func typeLabel(t impact.AsteroidType) string {
	if !t.Known() {
		return TypeUnknown
	}
	return string(t)
}

// ErrorKind classifies err into a bounded label value.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, impact.ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, oracle.ErrExternalService):
		return KindExternalService
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindOther
	}
}

type instrumented struct {
	next impact.Engine
	c    *Collector
}

// Instrument wraps engine so every call is recorded in c.
func (c *Collector) Instrument(engine impact.Engine) impact.Engine {
	return &instrumented{next: engine, c: c}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Analyze(ctx context.Context, in impact.AsteroidInput) (impact.AnalysisResult, error) {
	start := time.Now()
	res, err := i.next.Analyze(ctx, in)
	i.c.Observe(i.next.Name(), in, res, err, time.Since(start))
	return res, err
}
