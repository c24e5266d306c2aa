// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package metrics defines Prometheus instruments for Eval/EvalBundle/Validate
// calls. The pkg/reconforth entry points do not record into them; nothing in
// this module calls New or the Record methods.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and histogram recorded around one surface-binding
// call.
type Metrics struct {
	EvalTotal               *prometheus.CounterVec
	EvalDurationSeconds     prometheus.Histogram
	ValidationMessagesTotal *prometheus.CounterVec
}

// New creates and registers the reconforth_* instruments against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EvalTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconforth_eval_total",
				Help: "Total number of Eval/EvalBundle/Validate calls by result.",
			},
			[]string{"result"},
		),
		EvalDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconforth_eval_duration_seconds",
				Help:    "Duration of a single Eval/EvalBundle/Validate call.",
				Buckets: prometheus.DefBuckets,
			},
		),
		ValidationMessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconforth_validation_messages_total",
				Help: "Total validation messages emitted by severity.",
			},
			[]string{"severity"},
		),
	}

	reg.MustRegister(m.EvalTotal, m.EvalDurationSeconds, m.ValidationMessagesTotal)
	return m
}

// RecordEval increments the eval counter and duration histogram for one
// surface-binding call. result is "ok" or "error".
func (m *Metrics) RecordEval(result string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.EvalTotal.WithLabelValues(result).Inc()
	m.EvalDurationSeconds.Observe(durationSeconds)
}

// RecordValidation increments the validation-message counter for each
// message kind produced by a ValidationResult.
func (m *Metrics) RecordValidation(errors, warnings, suggestions int) {
	if m == nil {
		return
	}
	if errors > 0 {
		m.ValidationMessagesTotal.WithLabelValues("error").Add(float64(errors))
	}
	if warnings > 0 {
		m.ValidationMessagesTotal.WithLabelValues("warning").Add(float64(warnings))
	}
	if suggestions > 0 {
		m.ValidationMessagesTotal.WithLabelValues("suggestion").Add(float64(suggestions))
	}
}
