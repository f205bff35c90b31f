package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics wraps the counters and gauges the engine reports through a
// caller-supplied prometheus.Registerer. The core never starts its
// own HTTP listener; exposing /metrics is the embedder's job.
type Metrics struct {
	enabled bool

	ordersProcessed *prometheus.CounterVec
	trades          prometheus.Counter
	poolAvailable   prometheus.Gauge
	bookCount       prometheus.Gauge
}

// NewMetrics registers the engine's metrics against reg. A nil reg
// disables metrics entirely; each recording call then returns after a
// single flag check.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{enabled: false}
	}

	m := &Metrics{
		enabled: true,
		ordersProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchcore_orders_processed_total",
			Help: "Results pushed to egress, labeled by status.",
		}, []string{"status"}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchcore_trades_total",
			Help: "Trades emitted across all symbols.",
		}),
		poolAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchcore_pool_available",
			Help: "Free slots remaining in the order pool.",
		}),
		bookCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchcore_book_count",
			Help: "Number of live per-symbol order books.",
		}),
	}
	reg.MustRegister(m.ordersProcessed, m.trades, m.poolAvailable, m.bookCount)
	return m
}

func (m *Metrics) recordResult(status Status) {
	if !m.enabled {
		return
	}
	m.ordersProcessed.WithLabelValues(status.String()).Inc()
}

func (m *Metrics) recordTrades(n int) {
	if !m.enabled || n == 0 {
		return
	}
	m.trades.Add(float64(n))
}

func (m *Metrics) sample(poolAvailable int64, bookCount int) {
	if !m.enabled {
		return
	}
	m.poolAvailable.Set(float64(poolAvailable))
	m.bookCount.Set(float64(bookCount))
}
