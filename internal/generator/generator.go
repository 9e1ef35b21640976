// Package generator runs one generation batch: load the business record,
// render every template, then run the enabled emitters.
//
// Only loading the business record can fail the batch. Every template and
// emitter is an independent unit whose failure is logged, counted in the
// Report and skipped over.
package generator

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/emit"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/placeholder"
	"git.home.luguber.info/inful/sitegen/internal/templates"
)

// Request holds the inputs of one run.
type Request struct {
	// Root is the site directory every configured path is relative to.
	Root string

	// Config is the loaded configuration; nil means config.Default().
	Config *config.Config

	// Recorder receives metrics. When nil, a Prometheus recorder is used if
	// metrics.textfile is configured, otherwise nothing is recorded.
	Recorder metrics.Recorder
}

// Run executes a full batch. The returned error is non-nil only for fatal
// conditions, in which case the report covers the work done so far.
func Run(req Request) (*Report, error) {
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}
	paths := cfg.Paths.Resolve(req.Root)

	report := newReport(uuid.NewString())
	log := slog.Default().With(logfields.RunID(report.RunID))

	recorder, prom := recorderFor(req.Recorder, cfg.Metrics)
	defer func() {
		report.finish()
		recorder.ObserveRunDuration(report.Duration())
		recorder.SetLastRunTimestamp(report.End)
		if prom != nil {
			textfile := resolve(req.Root, cfg.Metrics.Textfile)
			if err := prom.WriteTextfile(textfile); err != nil {
				log.Warn("Failed to write metrics textfile", logfields.Path(textfile), logfields.Error(err))
			}
		}
	}()

	rec, err := business.Load(paths.BusinessFile)
	if err != nil {
		log.Error("Failed to load business data", logfields.Path(paths.BusinessFile), logfields.Error(err))
		report.Fatal = err
		return report, err
	}

	set := placeholder.NewSet(rec, cfg.Defaults)
	runTemplates(report, recorder, log, &templates.Processor{
		Renderer:     templates.NewRenderer(rec, set),
		TemplatesDir: paths.TemplatesDir,
		RulesDir:     paths.RulesDir,
		PublicDir:    paths.PublicDir,
		Logger:       log,
	})

	runEmitters(report, recorder, log, cfg.Emitters, &emit.Context{
		Record:   rec,
		Defaults: cfg.Defaults,
		Paths:    paths,
		Logger:   log,
	})

	log.Info("Generation finished",
		slog.Int("templates", len(report.Templates)),
		slog.Int("emitters", len(report.Emitters)),
		slog.String("outcome", string(report.Outcome())))
	return report, nil
}

func runTemplates(report *Report, recorder metrics.Recorder, log *slog.Logger, proc *templates.Processor) {
	names, err := templates.Discover(proc.TemplatesDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn("Templates folder not found", logfields.Path(proc.TemplatesDir))
		report.Warnings = append(report.Warnings, "templates folder not found: "+proc.TemplatesDir)
		return
	case err != nil:
		log.Warn("Failed to list templates", logfields.Path(proc.TemplatesDir), logfields.Error(err))
		report.Warnings = append(report.Warnings, err.Error())
		return
	}

	log.Info("Processing templates", logfields.Path(proc.TemplatesDir), logfields.Count(len(names)))
	for _, name := range names {
		start := time.Now()
		res := proc.Process(name)
		recorder.ObserveUnitDuration(metrics.KindTemplate, name, time.Since(start))
		recorder.AddMissingPlaceholders(len(res.Missing))

		switch {
		case !res.OK():
			recorder.IncUnitResult(metrics.KindTemplate, metrics.ResultFailed)
		case len(res.Warnings) > 0 || len(res.Missing) > 0:
			recorder.IncUnitResult(metrics.KindTemplate, metrics.ResultWarning)
			recorder.IncOutputStatus(string(res.Write.Status))
		default:
			recorder.IncUnitResult(metrics.KindTemplate, metrics.ResultSuccess)
			recorder.IncOutputStatus(string(res.Write.Status))
		}
		report.Templates = append(report.Templates, res)
	}
}

func runEmitters(report *Report, recorder metrics.Recorder, log *slog.Logger, enabled config.EmittersConfig, ctx *emit.Context) {
	for _, e := range emit.Enabled(enabled) {
		elog := log.With(logfields.Emitter(e.Name()))
		start := time.Now()
		res, err := e.Emit(ctx)
		recorder.ObserveUnitDuration(metrics.KindEmitter, e.Name(), time.Since(start))

		outcome := EmitterOutcome{Result: res}
		switch {
		case err != nil:
			outcome.Err = sgerrors.EmitterFailed(e.Name(), err)
			recorder.IncUnitResult(metrics.KindEmitter, metrics.ResultFailed)
			elog.Error("Emitter failed", logfields.Error(err))
		case res.Skipped || len(res.Warnings) > 0:
			recorder.IncUnitResult(metrics.KindEmitter, metrics.ResultWarning)
			if !res.Skipped {
				recorder.IncOutputStatus(string(res.Write.Status))
			}
		default:
			recorder.IncUnitResult(metrics.KindEmitter, metrics.ResultSuccess)
			recorder.IncOutputStatus(string(res.Write.Status))
			elog.Info("Generated", logfields.Output(res.Path), logfields.Status(string(res.Write.Status)))
		}
		report.Emitters = append(report.Emitters, outcome)
	}
}

func recorderFor(explicit metrics.Recorder, cfg config.MetricsConfig) (metrics.Recorder, *metrics.PrometheusRecorder) {
	if explicit != nil {
		prom, _ := explicit.(*metrics.PrometheusRecorder)
		if cfg.Textfile == "" {
			prom = nil
		}
		return explicit, prom
	}
	if cfg.Textfile == "" {
		return metrics.NoopRecorder{}, nil
	}
	prom := metrics.NewPrometheusRecorder(nil)
	return prom, prom
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
