// Package metrics exports run statistics in the Prometheus textfile format
// read by the node_exporter textfile collector.
package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "rehost"

// Result label values of rehost_resolutions_total.
const (
	ResultSuccess       = "success"
	ResultCommandFailed = "command_failed"
	ResultEmptyResult   = "empty_result"
	ResultError         = "error"
)

// Collectors holds the metrics of a single run.
type Collectors struct {
	Resolutions  *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	LastRun      prometheus.Gauge
	LinesUpdated prometheus.Gauge
	Outcome      *prometheus.GaugeVec
}

// NewCollectors creates the run metrics and registers them on reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Directive commands run, by directive name and result.",
			},
			[]string{"name", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolution_duration_seconds",
				Help:      "Time spent running directive commands.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"name"},
		),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
		LinesUpdated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lines_updated",
			Help:      "HostName lines rewritten by the last run.",
		}),
		Outcome: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_outcome",
				Help:      "Outcome of the last run, set to 1 for the outcome reached.",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(c.Resolutions, c.Duration, c.LastRun, c.LinesUpdated, c.Outcome)
	return c
}

// Record folds report into the collectors.
func (c *Collectors) Record(report *domain.Report, now time.Time) {
	for _, res := range report.Resolutions {
		c.Resolutions.WithLabelValues(res.Task.Name, ResultLabel(res.Err)).Inc()
		c.Duration.WithLabelValues(res.Task.Name).Observe(res.Duration.Seconds())
	}

	lines := 0
	if report.Written() {
		lines = report.Changed()
	}
	c.LinesUpdated.Set(float64(lines))
	c.Outcome.WithLabelValues(report.Outcome.String()).Set(1)
	c.LastRun.Set(float64(now.Unix()))
}

// ResultLabel classifies a resolution error for the result label.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrEmptyResult):
		return ResultEmptyResult
	case errors.Is(err, domain.ErrCommandFailed):
		return ResultCommandFailed
	default:
		return ResultError
	}
}

// Exporter implements ports.Metrics.
type Exporter struct {
	// Now returns the run's finish time. Defaults to time.Now.
	Now func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

// Export writes the metrics of report to path. Every call starts from an
// empty registry since a textfile describes exactly one run.
func (e *Exporter) Export(path string, report *domain.Report) error {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	reg := prometheus.NewRegistry()
	NewCollectors(reg).Record(report, now())

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	return nil
}
