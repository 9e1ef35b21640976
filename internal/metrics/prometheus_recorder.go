package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	unitDuration   *prom.HistogramVec
	unitResults    *prom.CounterVec
	outputStatus   *prom.CounterVec
	missing        prom.Counter
	runDuration    prom.Gauge
	lastRunSeconds prom.Gauge
}

// NewPrometheusRecorder constructs and registers the generator metrics on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		unitDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "unit_duration_seconds",
			Help:      "Duration of individual template renders and emitters",
			Buckets:   prom.DefBuckets,
		}, []string{"kind", "name"}),
		unitResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "unit_results_total",
			Help:      "Template and emitter results by outcome",
		}, []string{"kind", "result"}),
		outputStatus: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "outputs_total",
			Help:      "Written files by status relative to the previous run",
		}, []string{"status"}),
		missing: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "missing_placeholders_total",
			Help:      "Placeholders substituted with the empty string",
		}),
		runDuration: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitegen",
			Name:      "run_duration_seconds",
			Help:      "Duration of the last generation run",
		}),
		lastRunSeconds: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitegen",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last generation run finished",
		}),
	}
	reg.MustRegister(pr.unitDuration, pr.unitResults, pr.outputStatus, pr.missing, pr.runDuration, pr.lastRunSeconds)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveUnitDuration(kind, name string, d time.Duration) {
	p.unitDuration.WithLabelValues(kind, name).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncUnitResult(kind string, result ResultLabel) {
	p.unitResults.WithLabelValues(kind, string(result)).Inc()
}

func (p *PrometheusRecorder) IncOutputStatus(status string) {
	p.outputStatus.WithLabelValues(status).Inc()
}

func (p *PrometheusRecorder) AddMissingPlaceholders(n int) {
	if n > 0 {
		p.missing.Add(float64(n))
	}
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Set(d.Seconds())
}

func (p *PrometheusRecorder) SetLastRunTimestamp(t time.Time) {
	p.lastRunSeconds.Set(float64(t.Unix()))
}

// WriteTextfile writes the registry to path in the text exposition format.
// The write is atomic (temp file plus rename), as textfile collectors expect.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
