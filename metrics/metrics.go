// Package metrics records balance-simulation statistics as Prometheus
// metrics on a private registry.
//
// # Description
//
// A Recorder counts rounds, flips and finished runs, and keeps a histogram of
// rounds to convergence and of the smaller faction's share. The batch runner
// feeds it once per finished universe; the CLI dumps it in node-exporter
// textfile format with WriteTextfile.
//
// # Thread Safety
//
// All methods are safe for concurrent use. A nil *Recorder is a valid no-op.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics.
const metricsNamespace = "triad"

// Run outcome label values.
const (
	OutcomeConverged  = "converged"
	OutcomeRoundLimit = "round_limit"
	OutcomeCanceled   = "canceled"
	OutcomeFailed     = "failed"
)

// Recorder holds the simulation metrics.
type Recorder struct {
	reg *prometheus.Registry

	// RoundsTotal counts non-terminal rounds over all runs.
	RoundsTotal prometheus.Counter

	// FlipsTotal counts label flips over all runs.
	FlipsTotal prometheus.Counter

	// RunsTotal counts finished runs.
	// Labels: outcome (converged, round_limit, canceled, failed)
	RunsTotal *prometheus.CounterVec

	// RoundsToConverge is the distribution of rounds of converged runs.
	RoundsToConverge prometheus.Histogram

	// SmallFactionShare is the distribution of small/N at convergence.
	SmallFactionShare prometheus.Histogram
}

// NewRecorder registers all metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		RoundsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rounds_total",
			Help:      "Rounds executed across all universes",
		}),
		FlipsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "flips_total",
			Help:      "Edge label flips across all universes",
		}),
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Finished universe runs by outcome",
		}, []string{"outcome"}),
		RoundsToConverge: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "rounds_to_converge",
			Help:      "Rounds needed by converged universes",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
		SmallFactionShare: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "small_faction_share",
			Help:      "Size of the smaller faction over the population at convergence",
			Buckets:   prometheus.LinearBuckets(0, 0.05, 11), // 0 to 0.5
		}),
	}
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.reg
}

// ObserveRun records one finished universe.
func (r *Recorder) ObserveRun(outcome string, rounds, flips int) {
	if r == nil {
		return
	}
	r.RoundsTotal.Add(float64(rounds))
	r.FlipsTotal.Add(float64(flips))
	r.RunsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeConverged {
		r.RoundsToConverge.Observe(float64(rounds))
	}
}

// ObserveSplit records the faction split of a converged universe.
func (r *Recorder) ObserveSplit(small, population int) {
	if r == nil || population <= 0 {
		return
	}
	r.SmallFactionShare.Observe(float64(small) / float64(population))
}

// WriteTextfile writes all metrics to path in the text exposition format,
// atomically (temp file + rename).
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: WriteTextfile(%s): %w", path, err)
	}
	return nil
}
