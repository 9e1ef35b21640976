// Package metrics records batch generation metrics.
//
// Components receive a Recorder; NoopRecorder is the default so call sites
// never check for nil. When metrics.textfile is configured the generator
// uses a PrometheusRecorder and writes its registry in the node exporter
// textfile format at the end of the run.
package metrics

import "time"

// ResultLabel enumerates per-unit result categories.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFailed  ResultLabel = "failed"
)

// Unit kinds, used as the "kind" label.
const (
	KindTemplate = "template"
	KindEmitter  = "emitter"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	ObserveUnitDuration(kind, name string, d time.Duration)
	IncUnitResult(kind string, result ResultLabel)
	IncOutputStatus(status string)
	AddMissingPlaceholders(n int)
	ObserveRunDuration(d time.Duration)
	SetLastRunTimestamp(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveUnitDuration(string, string, time.Duration) {}
func (NoopRecorder) IncUnitResult(string, ResultLabel)                 {}
func (NoopRecorder) IncOutputStatus(string)                            {}
func (NoopRecorder) AddMissingPlaceholders(int)                        {}
func (NoopRecorder) ObserveRunDuration(time.Duration)                  {}
func (NoopRecorder) SetLastRunTimestamp(time.Time)                     {}
