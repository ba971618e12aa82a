package leaderboard

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hazyhaar/scores/kit"
)

// metrics owns a private registry so several services (and tests) never
// collide on the global one.
type metrics struct {
	registry *prometheus.Registry

	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	returned prometheus.Counter
	inserts  *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leaderboard",
			Name:      "store_queries_total",
			Help:      "Score queries by transport and result.",
		}, []string{"transport", "result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leaderboard",
			Name:      "store_query_duration_seconds",
			Help:      "Time spent in the score store per query, lock wait included.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		returned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leaderboard",
			Name:      "records_returned_total",
			Help:      "Score records returned by queries.",
		}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leaderboard",
			Name:      "store_inserts_total",
			Help:      "Score inserts by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.queries, m.duration, m.returned, m.inserts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *metrics) observeQuery(ctx context.Context, d time.Duration, n int, err error) {
	m.queries.WithLabelValues(kit.GetTransport(ctx), result(err)).Inc()
	m.duration.Observe(d.Seconds())
	m.returned.Add(float64(n))
}

func (m *metrics) observeInsert(err error) {
	m.inserts.WithLabelValues(result(err)).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
