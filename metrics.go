package telexide

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the per-bot Prometheus collectors. Each bot owns its own
// registry so multiple bots in one process do not collide.
type metrics struct {
	registry *prometheus.Registry

	updatesReceived prometheus.Counter
	dispatched      *prometheus.CounterVec
	handlerErrors   prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		updatesReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "telexide",
			Name:      "updates_received_total",
			Help:      "Updates received from the Bot API.",
		}),
		dispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "telexide",
			Name:      "updates_dispatched_total",
			Help:      "Updates dispatched to handlers, by update type.",
		}, []string{"type"}),
		handlerErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "telexide",
			Name:      "handler_errors_total",
			Help:      "Errors returned by user callbacks.",
		}),
	}
}

// handler returns an HTTP handler serving the bot's metrics.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
