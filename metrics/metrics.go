// SPDX-License-Identifier: MIT

// Package metrics records alignment runs as Prometheus metrics on a private
// registry and exports them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nwalign"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns the alignment metrics.
type Recorder struct {
	reg       *prometheus.Registry
	runs      *prometheus.CounterVec
	cells     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	bestScore *prometheus.GaugeVec
}

// NewRecorder registers every metric on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alignments_total",
			Help:      "Alignment runs by mode and outcome.",
		}, []string{"mode", "outcome"}),
		cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_total",
			Help:      "Dynamic-programming cells filled by successful runs.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alignment_duration_seconds",
			Help:      "Wall time of alignment runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
		bestScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_score",
			Help:      "Optimal score of the last successful run.",
		}, []string{"mode"}),
	}
	r.reg.MustRegister(r.runs, r.cells, r.duration, r.bestScore)

	return r
}

// Observe records one run. cells and score are ignored when err is non-nil.
func (r *Recorder) Observe(mode string, cells int, elapsed time.Duration, score int, err error) {
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if err != nil {
		r.runs.WithLabelValues(mode, OutcomeError).Inc()
		return
	}
	r.runs.WithLabelValues(mode, OutcomeOK).Inc()
	r.cells.WithLabelValues(mode).Add(float64(cells))
	r.bestScore.WithLabelValues(mode).Set(float64(score))
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer { return r.reg }

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
