package keeper

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Matching engine metrics, grounded in the pack's Collector/GetCollector
// singleton shape but scoped down to what this engine actually emits:
// order submissions, trades, and order book depth, keyed by trade pair.

var (
	metricsCollector *Collector
	metricsOnce      sync.Once
)

// Collector holds the matching engine's prometheus metrics.
type Collector struct {
	OrdersTotal    *prometheus.CounterVec
	OrdersCanceled *prometheus.CounterVec
	TradesTotal    *prometheus.CounterVec
	TradeVolume    *prometheus.CounterVec
	BookDepthGauge *prometheus.GaugeVec
}

// GetCollector returns the process-wide metrics collector, creating and
// registering it with the default registry on first use.
func GetCollector() *Collector {
	metricsOnce.Do(func() {
		metricsCollector = newCollector()
	})
	return metricsCollector
}

func newCollector() *Collector {
	c := &Collector{
		OrdersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dex",
			Subsystem: "orders",
			Name:      "total",
			Help:      "Total number of orders submitted, by pair/side/kind.",
		}, []string{"pair", "side", "kind"}),
		OrdersCanceled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dex",
			Subsystem: "orders",
			Name:      "canceled_total",
			Help:      "Total number of orders canceled, by pair.",
		}, []string{"pair"}),
		TradesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dex",
			Subsystem: "trades",
			Name:      "total",
			Help:      "Total number of fills executed, by pair.",
		}, []string{"pair"}),
		TradeVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dex",
			Subsystem: "trades",
			Name:      "base_volume",
			Help:      "Cumulative base-asset volume traded, by pair.",
		}, []string{"pair"}),
		BookDepthGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dex",
			Subsystem: "orderbook",
			Name:      "price_levels",
			Help:      "Number of resting price levels on one side of the book.",
		}, []string{"pair", "side"}),
	}

	prometheus.MustRegister(c.OrdersTotal)
	prometheus.MustRegister(c.OrdersCanceled)
	prometheus.MustRegister(c.TradesTotal)
	prometheus.MustRegister(c.TradeVolume)
	prometheus.MustRegister(c.BookDepthGauge)

	return c
}

// RecordOrder increments the order counter for a freshly submitted order.
func (c *Collector) RecordOrder(pair, side, kind string) {
	c.OrdersTotal.WithLabelValues(pair, side, kind).Inc()
}

// RecordCancel increments the cancellation counter for pair.
func (c *Collector) RecordCancel(pair string) {
	c.OrdersCanceled.WithLabelValues(pair).Inc()
}

// RecordTrade folds a settled fill's base quantity into the trade counters.
func (c *Collector) RecordTrade(pair string, baseQty float64) {
	c.TradesTotal.WithLabelValues(pair).Inc()
	c.TradeVolume.WithLabelValues(pair).Add(baseQty)
}

// RecordBookDepth publishes the current number of resting price levels on
// one side of pair's book, called from BookDepth each time a depth query
// reads the book.
func (c *Collector) RecordBookDepth(pair, side string, levels int) {
	c.BookDepthGauge.WithLabelValues(pair, side).Set(float64(levels))
}

// Handler exposes the default prometheus registry for mounting under the
// node's API server.
func Handler() http.Handler {
	return promhttp.Handler()
}
