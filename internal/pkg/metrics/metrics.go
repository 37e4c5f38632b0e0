// Package metrics holds the Prometheus collectors of the service.
// Collectors live on a Metrics value instead of package globals so that each server
// and each test registers into its own registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "supplychain"

type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeRecords *prometheus.GaugeVec
	storeNextID  *prometheus.GaugeVec
	storeCorrupt *prometheus.GaugeVec
}

func New() *Metrics {
	return &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		storeRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "store_records",
				Help:      "Live records per entity store at the last audit",
			},
			[]string{"entity"},
		),
		storeNextID: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "store_next_id",
				Help:      "Next identifier the entity store will allocate",
			},
			[]string{"entity"},
		),
		storeCorrupt: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "store_corrupt_records",
				Help:      "Records that failed to decode at the last audit",
			},
			[]string{"entity"},
		),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.storeRecords,
		m.storeNextID,
		m.storeCorrupt,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRequest records one served request. route is the matched route pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveStore(entity string, nextID uint64, records, corrupt int) {
	m.storeNextID.WithLabelValues(entity).Set(float64(nextID))
	m.storeRecords.WithLabelValues(entity).Set(float64(records))
	m.storeCorrupt.WithLabelValues(entity).Set(float64(corrupt))
}
