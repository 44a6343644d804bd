package listing

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opSearch  = "search"
	opGet     = "get"
	opReviews = "reviews"

	resultOK        = "ok"
	resultNotFound  = "not_found"
	resultCancelled = "cancelled"
	resultError     = "error"
)

type opMetrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newOpMetrics(reg prometheus.Registerer) *opMetrics {
	m := &opMetrics{
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listing_operations_total",
				Help: "Mock listing operations by outcome",
			},
			[]string{"op", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "listing_operation_duration_seconds",
				Help:    "Time from request to completion, simulated latency included",
				Buckets: []float64{.001, .01, .05, .1, .2, .3, .5, 1},
			},
			[]string{"op"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.ops, m.duration)
	}
	return m
}

func (m *opMetrics) observe(op string, start time.Time, err error) {
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.ops.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrNotFound):
		return resultNotFound
	case isCancelled(err):
		return resultCancelled
	default:
		return resultError
	}
}
