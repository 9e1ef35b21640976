package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Validate checks a defaulted configuration. It returns the first problem
// found as a config error naming the offending field.
func Validate(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	for _, check := range []func() error{v.validatePaths, v.validateDefaults, v.validateMetrics} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validatePaths() error {
	p := cv.config.Paths
	fields := map[string]string{
		"paths.business_file": p.BusinessFile,
		"paths.templates_dir": p.TemplatesDir,
		"paths.rules_dir":     p.RulesDir,
		"paths.public_dir":    p.PublicDir,
		"paths.data_dir":      p.DataDir,
		"paths.lib_dir":       p.LibDir,
	}
	for field, value := range fields {
		if strings.TrimSpace(value) == "" {
			return sgerrors.ConfigInvalid(field, "must not be empty")
		}
	}
	// Rendered rules land next to their sources otherwise.
	if filepath.Clean(p.TemplatesDir) == filepath.Clean(p.RulesDir) {
		return sgerrors.ConfigInvalid("paths.rules_dir", "must differ from paths.templates_dir")
	}
	return nil
}

func (cv *configurationValidator) validateDefaults() error {
	d := cv.config.Defaults
	u, err := url.Parse(d.WebsiteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return sgerrors.ConfigInvalid("defaults.website_url", fmt.Sprintf("%q is not an absolute http(s) URL", d.WebsiteURL))
	}
	if !strings.HasPrefix(d.ThemeColor, "#") {
		return sgerrors.ConfigInvalid("defaults.theme_color", "must be a #RRGGBB colour")
	}
	if r := d.PortfolioStats.AverageRating; r < 0 || r > 5 {
		return sgerrors.ConfigInvalid("defaults.portfolio_stats.average_rating", "must be between 0 and 5")
	}
	return nil
}

func (cv *configurationValidator) validateMetrics() error {
	tf := cv.config.Metrics.Textfile
	if tf != "" && filepath.Ext(tf) != ".prom" {
		return sgerrors.ConfigInvalid("metrics.textfile", "must end in .prom")
	}
	return nil
}
