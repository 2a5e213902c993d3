package monitor

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
)

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type Monitor struct {
	registry *prometheus.Registry

	actions       *prometheus.CounterVec
	actionLatency *prometheus.HistogramVec
}

func New(namespace string) *Monitor {
	m := &Monitor{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Match actions by kind and outcome",
		}, []string{"action", "outcome"}),
		actionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_latency_seconds",
			Help:      "Match action processing latency",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}, []string{"action"}),
	}

	m.registry.MustRegister(m.actions, m.actionLatency)

	return m
}

func (that *Monitor) ObserveAction(action string, err error, elapsed time.Duration) {
	that.actions.WithLabelValues(action, Outcome(err)).Inc()
	that.actionLatency.WithLabelValues(action).Observe(elapsed.Seconds())
}

func (that *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{})
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, apperror.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, apperror.ErrInvalidAction):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
