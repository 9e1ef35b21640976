package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyTemplate    = "template"
	KeyOutput      = "output"
	KeyPlaceholder = "placeholder"
	KeyEmitter     = "emitter"
	KeyPath        = "path"
	KeyStatus      = "status"
	KeyCount       = "count"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func Template(name string) slog.Attr    { return slog.String(KeyTemplate, name) }
func Output(path string) slog.Attr      { return slog.String(KeyOutput, path) }
func Placeholder(name string) slog.Attr { return slog.String(KeyPlaceholder, name) }
func Emitter(name string) slog.Attr     { return slog.String(KeyEmitter, name) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Status(s string) slog.Attr         { return slog.String(KeyStatus, s) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
