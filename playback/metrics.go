// SPDX-License-Identifier: MIT

package playback

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the playback collectors.
type Metrics struct {
	Runs     *prometheus.CounterVec   // labels: source, outcome
	Steps    *prometheus.CounterVec   // labels: source
	Rejected prometheus.Counter       // ErrBusy rejections
	Duration *prometheus.HistogramVec // labels: source
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// gets a fresh private registry. Registration panics on duplicates, as
// prometheus.MustRegister does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_playback_runs_total",
				Help: "Finished playback runs by outcome.",
			},
			[]string{"source", "outcome"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_playback_steps_total",
				Help: "Frames delivered to sinks.",
			},
			[]string{"source"},
		),
		Rejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "algoviz_playback_rejected_total",
				Help: "Runs rejected because another run was active.",
			},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoviz_playback_run_seconds",
				Help:    "Wall-clock duration of playback runs.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"source"},
		),
	}
	reg.MustRegister(m.Runs, m.Steps, m.Rejected, m.Duration)

	return m
}

func (m *Metrics) observe(r Report) {
	m.Runs.WithLabelValues(r.Source, string(r.Outcome)).Inc()
	m.Steps.WithLabelValues(r.Source).Add(float64(r.Steps))
	m.Duration.WithLabelValues(r.Source).Observe(r.Elapsed.Seconds())
}
