package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks generation and export of one run. It owns its registry so
// a run can be written out as a node-exporter textfile. A nil *Metrics is a
// no-op.
type Metrics struct {
	registry *prometheus.Registry

	RowsGenerated  *prometheus.GaugeVec
	StepDuration   *prometheus.HistogramVec
	RowsWritten    *prometheus.CounterVec
	WriteDuration  *prometheus.HistogramVec
	RunsFailed     prometheus.Counter
	LastRunSuccess prometheus.Gauge
}

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		RowsGenerated: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fakebank_rows_generated",
			Help: "Rows generated per table in the last run",
		}, []string{"table"}),
		StepDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fakebank_generation_step_duration_seconds",
			Help:    "Duration of each generation step",
			Buckets: durationBuckets,
		}, []string{"step"}),
		RowsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fakebank_rows_written_total",
			Help: "Rows written per table and sink",
		}, []string{"sink", "table"}),
		WriteDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fakebank_write_duration_seconds",
			Help:    "Duration of writing the dataset to a sink",
			Buckets: durationBuckets,
		}, []string{"sink"}),
		RunsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fakebank_runs_failed_total",
			Help: "Runs that ended in an error",
		}),
		LastRunSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fakebank_last_run_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),
	}
}

func (m *Metrics) ObserveStep(step string, d time.Duration) {
	if m == nil {
		return
	}
	m.StepDuration.WithLabelValues(step).Observe(d.Seconds())
}

func (m *Metrics) ObserveRows(table string, n int) {
	if m == nil {
		return
	}
	m.RowsGenerated.WithLabelValues(table).Set(float64(n))
}

// ObserveWrite records rows written to sink ("csv", "postgresql", ...).
func (m *Metrics) ObserveWrite(sink, table string, n int) {
	if m == nil {
		return
	}
	m.RowsWritten.WithLabelValues(sink, table).Add(float64(n))
}

// ObserveWriteDuration records the time since start for sink.
func (m *Metrics) ObserveWriteDuration(sink string, start time.Time) {
	if m == nil {
		return
	}
	m.WriteDuration.WithLabelValues(sink).Observe(time.Since(start).Seconds())
}

func (m *Metrics) RunFailed() {
	if m == nil {
		return
	}
	m.RunsFailed.Inc()
}

func (m *Metrics) RunSucceeded(at time.Time) {
	if m == nil {
		return
	}
	m.LastRunSuccess.Set(float64(at.Unix()))
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes the registry in text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
