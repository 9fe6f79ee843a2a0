package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix namespaces every scheduler metric.
const MetricsPrefix = "ingest_scheduler_"

// Metrics holds the Prometheus instruments for the scheduler and dispatch
// loop.
type Metrics struct {
	submissions      *prometheus.CounterVec
	batchesStarted   prometheus.Counter
	batchesCompleted prometheus.Counter
	processorErrors  prometheus.Counter
	dispatchFaults   *prometheus.CounterVec
	queueDepth       prometheus.Gauge
	loopRunning      prometheus.Gauge
	batchDuration    prometheus.Histogram
}

// NewMetrics creates the scheduler metrics and registers them with reg. A nil
// reg creates unregistered instruments, which tests use to avoid collisions
// in the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricsPrefix + "submissions_total",
			Help: "Number of accepted ingestion submissions grouped by priority",
		}, []string{"priority"}),
		batchesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricsPrefix + "batches_started_total",
			Help: "Number of batches moved to triggered",
		}),
		batchesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricsPrefix + "batches_completed_total",
			Help: "Number of batches moved to completed",
		}),
		processorErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricsPrefix + "processor_errors_total",
			Help: "Number of identifiers whose processing returned an error or panicked",
		}),
		dispatchFaults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricsPrefix + "dispatch_faults_total",
			Help: "Number of dispatch loop iterations that hit a fault grouped by kind",
		}, []string{"kind"}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: MetricsPrefix + "queue_depth",
			Help: "Number of submissions waiting in the priority queue",
		}),
		loopRunning: factory.NewGauge(prometheus.GaugeOpts{
			Name: MetricsPrefix + "dispatch_loop_running",
			Help: "1 while the dispatch loop is running, 0 while idle",
		}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricsPrefix + "batch_execution_seconds",
			Help:    "Time spent executing a batch, excluding the rate limit hold",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}
}

func (m *Metrics) RecordSubmission(priority string) {
	m.submissions.WithLabelValues(priority).Inc()
}

func (m *Metrics) RecordBatchStarted() {
	m.batchesStarted.Inc()
}

func (m *Metrics) RecordBatchCompleted(seconds float64) {
	m.batchesCompleted.Inc()
	m.batchDuration.Observe(seconds)
}

func (m *Metrics) RecordProcessorErrors(n int) {
	m.processorErrors.Add(float64(n))
}

func (m *Metrics) RecordFault(kind string) {
	m.dispatchFaults.WithLabelValues(kind).Inc()
}

func (m *Metrics) SetQueueDepth(n int) {
	m.queueDepth.Set(float64(n))
}

func (m *Metrics) SetLoopRunning(running bool) {
	if running {
		m.loopRunning.Set(1)
		return
	}
	m.loopRunning.Set(0)
}
