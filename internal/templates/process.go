package templates

import (
	"log/slog"
	"os"
	"path/filepath"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/output"
)

// Processor renders templates from one directory into the rules and public
// directories.
type Processor struct {
	Renderer     *Renderer
	TemplatesDir string
	RulesDir     string
	PublicDir    string
	Logger       *slog.Logger
}

// Result reports one processed template.
type Result struct {
	Template string
	Output   string
	Kind     OutputKind
	Write    output.Result
	Missing  []string
	Warnings []string
	Err      error
}

// OK reports whether the template rendered and wrote without error.
func (r Result) OK() bool { return r.Err == nil }

// Process renders, writes and validates a single template. Failures are
// returned in the result rather than aborting the caller's batch.
func (p *Processor) Process(name string) Result {
	log := p.logger().With(logfields.Template(name))
	res := Result{Template: name}

	// #nosec G304 -- name comes from a listing of the templates directory.
	src, err := os.ReadFile(filepath.Join(p.TemplatesDir, name))
	if err != nil {
		res.Err = sgerrors.TemplateFailed(name, err)
		log.Error("Failed to read template", logfields.Error(err))
		return res
	}

	rendered := p.Renderer.Render(string(src))
	res.Missing = rendered.Missing
	for _, ph := range rendered.Missing {
		log.Warn("Placeholder not found in business data", logfields.Placeholder(ph))
	}

	res.Output, res.Kind = Route(name, p.RulesDir, p.PublicDir)
	res.Write, err = output.WriteString(res.Output, rendered.Content)
	if err != nil {
		res.Err = sgerrors.TemplateFailed(name, sgerrors.OutputWriteFailed(res.Output, err))
		log.Error("Failed to write template output", logfields.Output(res.Output), logfields.Error(err))
		return res
	}

	switch res.Kind {
	case KindJSON:
		if err := ValidateJSONFile(res.Output); err != nil {
			res.Warnings = append(res.Warnings, err.Error())
			log.Warn("Generated file is not valid JSON", logfields.Output(res.Output), logfields.Error(err))
		}
	case KindRule:
		for _, issue := range CheckRule([]byte(rendered.Content)) {
			res.Warnings = append(res.Warnings, issue)
			log.Warn("Rule document check failed", logfields.Output(res.Output), slog.String("issue", issue))
		}
	}

	log.Info("Generated", logfields.Output(res.Output), logfields.Status(string(res.Write.Status)))
	return res
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
