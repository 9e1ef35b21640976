package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, "business.yaml", cfg.Paths.BusinessFile)
	assert.Equal(t, ".cursor/templates", cfg.Paths.TemplatesDir)
	assert.Equal(t, "Our Company", cfg.Defaults.BusinessName)
	assert.Equal(t, "Services", cfg.Defaults.PrimaryKeyword)
	assert.Equal(t, 500, cfg.Defaults.PortfolioStats.TotalProjects)
	assert.InDelta(t, 4.9, cfg.Defaults.PortfolioStats.AverageRating, 1e-9)

	for _, name := range []string{"robots", "scrape-data", "faq", "portfolio", "business-config", "seo-config"} {
		assert.True(t, cfg.Emitters.Enabled(name), name)
	}
	assert.False(t, cfg.Emitters.Enabled("blog-posts"))
	assert.False(t, cfg.Emitters.Enabled("unknown"))
}

func TestLoad_OverridesAndExplicitFalse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	raw := `
paths:
  public_dir: web/public
defaults:
  primary_keyword: Landscaping
emitters:
  faq: false
  blog_posts: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "web/public", cfg.Paths.PublicDir)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "Landscaping", cfg.Defaults.PrimaryKeyword)
	assert.False(t, cfg.Emitters.Enabled("faq"))
	assert.True(t, cfg.Emitters.Enabled("blog-posts"))
	assert.True(t, cfg.Emitters.Enabled("robots"))
}

func TestLoad_EnvFileExpansion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SITEGEN_TEST_URL=https://env.example\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("defaults:\n  website_url: ${SITEGEN_TEST_URL}\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SITEGEN_TEST_URL") })

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.Defaults.WebsiteURL)
}

func TestLoad_DollarSignsViaEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SITEGEN_TEST_CTA", "Only $99!")
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("defaults:\n  cta_text: ${SITEGEN_TEST_CTA}\n"), 0o600))

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, "Only $99!", cfg.Defaults.CTAText)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("paths: [oops\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, sgerrors.IsCategory(err, sgerrors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"relative website url", func(c *Config) { c.Defaults.WebsiteURL = "example.com" }, "defaults.website_url"},
		{"bad colour", func(c *Config) { c.Defaults.ThemeColor = "blue" }, "defaults.theme_color"},
		{"rating out of range", func(c *Config) { c.Defaults.PortfolioStats.AverageRating = 7 }, "defaults.portfolio_stats.average_rating"},
		{"rules over templates", func(c *Config) { c.Paths.RulesDir = ".cursor/templates/" }, "paths.rules_dir"},
		{"metrics extension", func(c *Config) { c.Metrics.Textfile = "metrics.txt" }, "metrics.textfile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			se, ok := sgerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, se.Context["field"])
		})
	}

	require.NoError(t, Validate(Default()))
}

func TestPathsResolve(t *testing.T) {
	p := Default().Paths
	p.LibDir = "/abs/lib"
	r := p.Resolve("/site")

	assert.Equal(t, filepath.Join("/site", "business.yaml"), r.BusinessFile)
	assert.Equal(t, filepath.Join("/site", ".cursor", "rules"), r.RulesDir)
	assert.Equal(t, "/abs/lib", r.LibDir)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, *Default(), *cfg)
}
