package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/generator"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// GenerateCmd implements the 'generate' command, which is also the default.
type GenerateCmd struct {
	Quiet bool `short:"q" help:"Skip the console summary"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	var out io.Writer = os.Stdout
	if g.Quiet {
		out = io.Discard
	}
	_, err := RunGenerate(root.Root, root.ConfigPath(), out)
	return err
}

// RunGenerate loads the configuration, runs one batch and prints its summary
// to out. Only fatal conditions are returned as errors.
func RunGenerate(siteRoot, configPath string, out io.Writer) (*generator.Report, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	report, err := generator.Run(generator.Request{Root: siteRoot, Config: cfg})
	report.Print(out)
	if err != nil {
		return report, err
	}

	slog.Info("Generation complete",
		logfields.RunID(report.RunID),
		slog.String("summary", report.Summary()))
	return report, nil
}
