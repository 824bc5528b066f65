package playlistart

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Delivery paths as reported by Metrics.
const (
	pathSingle    = "single"
	pathComposite = "composite"
	pathWatchdog  = "watchdog"
)

// Fetch outcomes as reported by Metrics.
const (
	fetchOK     = "ok"
	fetchFailed = "failed"
	fetchStale  = "stale"
)

// Metrics holds the Prometheus instrumentation of a Builder. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	BuildsStarted  prometheus.Counter
	Delivered      *prometheus.CounterVec
	Fetches        *prometheus.CounterVec
	WatchdogEmpty  prometheus.Counter
	RenderDuration prometheus.Histogram
}

// NewMetrics creates the builder metrics and registers them with reg. When reg
// is nil the metrics are created but not registered anywhere.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BuildsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mosaic",
			Subsystem: "playlist_art",
			Name:      "builds_started_total",
			Help:      "Total number of started playlist art builds",
		}),
		Delivered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mosaic",
				Subsystem: "playlist_art",
				Name:      "delivered_total",
				Help:      "Total number of delivered playlist images by how they were finalized",
			},
			[]string{"path"},
		),
		Fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mosaic",
				Subsystem: "playlist_art",
				Name:      "fetches_total",
				Help:      "Total number of finished song art fetches by outcome",
			},
			[]string{"outcome"},
		),
		WatchdogEmpty: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mosaic",
			Subsystem: "playlist_art",
			Name:      "watchdog_empty_total",
			Help:      "Total number of builds whose watchdog fired with nothing to deliver",
		}),
		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mosaic",
			Subsystem: "playlist_art",
			Name:      "render_duration_seconds",
			Help:      "Time spent drawing song art into the playlist canvas",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
	}
}

func (m *Metrics) buildStarted() {
	if m == nil {
		return
	}
	m.BuildsStarted.Inc()
}

func (m *Metrics) delivered(path string) {
	if m == nil {
		return
	}
	m.Delivered.WithLabelValues(path).Inc()
}

func (m *Metrics) fetched(outcome string) {
	if m == nil {
		return
	}
	m.Fetches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) watchdogEmpty() {
	if m == nil {
		return
	}
	m.WatchdogEmpty.Inc()
}

func (m *Metrics) rendered(took time.Duration) {
	if m == nil {
		return
	}
	m.RenderDuration.Observe(took.Seconds())
}
