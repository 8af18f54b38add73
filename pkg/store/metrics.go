package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics of a ModStore
type Metrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	recordsDecoded    prometheus.Counter
	leftoverBytes     prometheus.Counter
	backupsTotal      prometheus.Counter
}

// NewMetrics creates the store metrics and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kmod_store_operations_total",
				Help: "Total number of mod file operations",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kmod_store_operation_duration_seconds",
				Help:    "Mod file operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		recordsDecoded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kmod_store_records_decoded_total",
				Help: "Total number of records decoded",
			},
		),
		leftoverBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kmod_store_leftover_bytes_total",
				Help: "Total number of trailing bytes found after the last record",
			},
		),
		backupsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kmod_store_backups_total",
				Help: "Total number of backup files created",
			},
		),
	}
}

// RecordOperation records one operation and its duration
func (m *Metrics) RecordOperation(operation string, start time.Time, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordDecode records the outcome of a successful decode
func (m *Metrics) RecordDecode(records, leftover int) {
	m.recordsDecoded.Add(float64(records))
	m.leftoverBytes.Add(float64(leftover))
}

// RecordBackup counts a created backup
func (m *Metrics) RecordBackup() {
	m.backupsTotal.Inc()
}
