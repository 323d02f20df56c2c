package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersRead      prometheus.Counter
	OrdersFiltered  prometheus.Counter
	RowsEmitted     prometheus.Counter
	Batches         prometheus.Counter
	BatchFailures   prometheus.Counter
	BatchLatencySec prometheus.Histogram
	LastBatchRows   prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	ordersRead := prometheus.NewCounter(prometheus.CounterOpts{Name: "dcs_orders_read_total"})
	ordersFiltered := prometheus.NewCounter(prometheus.CounterOpts{Name: "dcs_orders_filtered_total"})
	rowsEmitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "dcs_rows_emitted_total"})
	batches := prometheus.NewCounter(prometheus.CounterOpts{Name: "dcs_batches_total"})
	batchFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "dcs_batch_failures_total"})
	batchLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dcs_batch_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	lastBatchRows := prometheus.NewGauge(prometheus.GaugeOpts{Name: "dcs_last_batch_rows"})

	r.MustRegister(ordersRead, ordersFiltered, rowsEmitted, batches, batchFailures, batchLatency, lastBatchRows)
	return &Registry{
		reg:             r,
		OrdersRead:      ordersRead,
		OrdersFiltered:  ordersFiltered,
		RowsEmitted:     rowsEmitted,
		Batches:         batches,
		BatchFailures:   batchFailures,
		BatchLatencySec: batchLatency,
		LastBatchRows:   lastBatchRows,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
