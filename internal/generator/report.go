package generator

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"git.home.luguber.info/inful/sitegen/internal/emit"
	"git.home.luguber.info/inful/sitegen/internal/templates"
)

// Outcome is the overall result of a run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// EmitterOutcome pairs an emitter result with its error, if any.
type EmitterOutcome struct {
	Result emit.Result
	Err    error
}

// Report captures what a run did.
type Report struct {
	RunID     string
	Start     time.Time
	End       time.Time
	Fatal     error
	Warnings  []string
	Templates []templates.Result
	Emitters  []EmitterOutcome
}

func newReport(runID string) *Report {
	return &Report{RunID: runID, Start: time.Now()}
}

func (r *Report) finish() { r.End = time.Now() }

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// Failures counts templates and emitters that failed.
func (r *Report) Failures() int {
	n := 0
	for _, t := range r.Templates {
		if !t.OK() {
			n++
		}
	}
	for _, e := range r.Emitters {
		if e.Err != nil {
			n++
		}
	}
	return n
}

func (r *Report) warningCount() int {
	n := len(r.Warnings)
	for _, t := range r.Templates {
		if t.OK() && (len(t.Warnings) > 0 || len(t.Missing) > 0) {
			n++
		}
	}
	for _, e := range r.Emitters {
		if e.Err == nil && (e.Result.Skipped || len(e.Result.Warnings) > 0) {
			n++
		}
	}
	return n
}

// Outcome derives the overall result.
func (r *Report) Outcome() Outcome {
	switch {
	case r.Fatal != nil || r.Failures() > 0:
		return OutcomeFailed
	case r.warningCount() > 0:
		return OutcomeWarning
	default:
		return OutcomeSuccess
	}
}

// Summary returns a single-line summary for logs.
func (r *Report) Summary() string {
	return fmt.Sprintf("templates=%d emitters=%d failures=%d warnings=%d duration=%s outcome=%s",
		len(r.Templates), len(r.Emitters), r.Failures(), r.warningCount(),
		r.Duration().Truncate(time.Millisecond), r.Outcome())
}

// Print writes the console summary. Colors follow color.NoColor.
func (r *Report) Print(w io.Writer) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)
	bold := color.New(color.Bold)

	bold.Fprintln(w, "\nGENERATION SUMMARY")
	if r.Fatal != nil {
		fail.Fprintf(w, "❌ %v\n", r.Fatal)
		return
	}
	for _, msg := range r.Warnings {
		warn.Fprintf(w, "⚠️  %s\n", msg)
	}

	if len(r.Templates) > 0 {
		bold.Fprintf(w, "\nTemplates processed: %d\n", len(r.Templates))
	}
	for _, t := range r.Templates {
		switch {
		case !t.OK():
			fail.Fprintf(w, "❌ %s: %v\n", t.Template, t.Err)
		case len(t.Warnings) > 0 || len(t.Missing) > 0:
			warn.Fprintf(w, "⚠️  %s -> %s (%s, %d missing, %d warnings)\n", t.Template, t.Output, t.Write.Status, len(t.Missing), len(t.Warnings))
		default:
			ok.Fprintf(w, "✅ %s -> %s (%s)\n", t.Template, t.Output, t.Write.Status)
		}
	}

	if len(r.Emitters) > 0 {
		bold.Fprintf(w, "\nData files generated: %d\n", len(r.Emitters))
	}
	for _, e := range r.Emitters {
		res := e.Result
		switch {
		case e.Err != nil:
			fail.Fprintf(w, "❌ %s: %v\n", res.Emitter, e.Err)
		case res.Skipped:
			warn.Fprintf(w, "⚠️  %s: skipped (%s)\n", res.Emitter, firstOr(res.Warnings, "nothing to do"))
		case len(res.Warnings) > 0:
			warn.Fprintf(w, "⚠️  %s -> %s (%s, %s)\n", res.Emitter, res.Path, res.Write.Status, res.Warnings[0])
		default:
			ok.Fprintf(w, "✅ %s -> %s (%s)\n", res.Emitter, res.Path, res.Write.Status)
		}
	}

	fmt.Fprintf(w, "\n%s\n", r.Summary())
}

func firstOr(s []string, def string) string {
	if len(s) > 0 {
		return s[0]
	}
	return def
}
