// Package config loads sitegen.yaml: site-relative paths, the catalog of
// fallback values used when the business record leaves a field out, emitter
// toggles and metrics output.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// DefaultFile is the configuration file looked up under the site root.
const DefaultFile = "sitegen.yaml"

// Config represents the generator configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Defaults Defaults       `yaml:"defaults"`
	Emitters EmittersConfig `yaml:"emitters"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PathsConfig holds input and output locations relative to the site root.
type PathsConfig struct {
	BusinessFile string `yaml:"business_file"`
	TemplatesDir string `yaml:"templates_dir"`
	RulesDir     string `yaml:"rules_dir"`
	PublicDir    string `yaml:"public_dir"`
	DataDir      string `yaml:"data_dir"`
	LibDir       string `yaml:"lib_dir"`
}

// Resolve returns a copy with every relative path joined onto root.
func (p PathsConfig) Resolve(root string) PathsConfig {
	join := func(rel string) string {
		if rel == "" || filepath.IsAbs(rel) {
			return rel
		}
		return filepath.Join(root, rel)
	}
	return PathsConfig{
		BusinessFile: join(p.BusinessFile),
		TemplatesDir: join(p.TemplatesDir),
		RulesDir:     join(p.RulesDir),
		PublicDir:    join(p.PublicDir),
		DataDir:      join(p.DataDir),
		LibDir:       join(p.LibDir),
	}
}

// Defaults is the catalog of values substituted when the business record
// does not provide a field.
type Defaults struct {
	BusinessName      string         `yaml:"business_name"`
	WebsiteURL        string         `yaml:"website_url"`
	PrimaryKeyword    string         `yaml:"primary_keyword"`
	CTAText           string         `yaml:"cta_text"`
	AvailableLanguage string         `yaml:"available_language"`
	BusinessType      string         `yaml:"business_type"`
	Tone              string         `yaml:"tone"`
	WeekdayHours      string         `yaml:"weekday_hours"`
	SundayHours       string         `yaml:"sunday_hours"`
	HoursSummary      string         `yaml:"hours_summary"`
	HoursSchema       string         `yaml:"hours_schema"`
	State             string         `yaml:"state"`
	City              string         `yaml:"city"`
	Country           string         `yaml:"country"`
	LastUpdated       string         `yaml:"last_updated"`
	Year              string         `yaml:"year"`
	PlaceholderImage  string         `yaml:"placeholder_image"`
	ThemeColor        string         `yaml:"theme_color"`
	PortfolioStats    PortfolioStats `yaml:"portfolio_stats"`
}

// PortfolioStats is the fixed stats block of portfolio.json.
type PortfolioStats struct {
	TotalProjects   int     `yaml:"total_projects" json:"totalProjects"`
	HappyClients    int     `yaml:"happy_clients" json:"happyClients"`
	YearsExperience int     `yaml:"years_experience" json:"yearsExperience"`
	AverageRating   float64 `yaml:"average_rating" json:"averageRating"`
}

// EmittersConfig toggles the structured data emitters. Omitted entries take
// their default; see EmittersDefaultApplier.
type EmittersConfig struct {
	Robots         *bool `yaml:"robots"`
	ScrapeData     *bool `yaml:"scrape_data"`
	FAQ            *bool `yaml:"faq"`
	Portfolio      *bool `yaml:"portfolio"`
	BusinessConfig *bool `yaml:"business_config"`
	SEOConfig      *bool `yaml:"seo_config"`
	BlogPosts      *bool `yaml:"blog_posts"`
}

// Enabled reports whether the emitter with the given name runs.
// Unknown names are disabled.
func (e EmittersConfig) Enabled(name string) bool {
	var flag *bool
	switch name {
	case "robots":
		flag = e.Robots
	case "scrape-data":
		flag = e.ScrapeData
	case "faq":
		flag = e.FAQ
	case "portfolio":
		flag = e.Portfolio
	case "business-config":
		flag = e.BusinessConfig
	case "seo-config":
		flag = e.SEOConfig
	case "blog-posts":
		flag = e.BlogPosts
	}
	return flag != nil && *flag
}

// MetricsConfig controls the Prometheus textfile written after each run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Load loads configuration from path. A missing file yields the default
// configuration; a malformed or invalid one is a fatal config error.
//
// ${VAR} and $VAR references are expanded across the whole file before it is
// parsed, so a literal dollar sign in a value (cta_text: "Only $99!") is
// consumed. Put such text in an environment variable and reference it
// instead; expanded values are not expanded again.
func Load(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	var cfg Config
	// #nosec G304 -- path is the operator-supplied configuration file.
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("No configuration file, using defaults", logfields.Path(path))
	case err != nil:
		return nil, sgerrors.ConfigParseFailed(path, err)
	default:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, sgerrors.ConfigParseFailed(path, err)
		}
	}

	if err := NewDefaultApplier().ApplyDefaults(&cfg); err != nil {
		return nil, sgerrors.InternalError("failed to apply configuration defaults", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	// Appliers never fail on an empty config.
	_ = NewDefaultApplier().ApplyDefaults(&cfg)
	return &cfg
}

// Init writes a configuration file populated with every default.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
