package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// PathsDefaultApplier handles site layout defaults.
type PathsDefaultApplier struct{}

func (p *PathsDefaultApplier) Domain() string { return "paths" }

func (p *PathsDefaultApplier) ApplyDefaults(cfg *Config) error {
	setString(&cfg.Paths.BusinessFile, "business.yaml")
	setString(&cfg.Paths.TemplatesDir, ".cursor/templates")
	setString(&cfg.Paths.RulesDir, ".cursor/rules")
	setString(&cfg.Paths.PublicDir, "public")
	setString(&cfg.Paths.DataDir, "data")
	setString(&cfg.Paths.LibDir, "lib")
	return nil
}

// CatalogDefaultApplier fills the fallback value catalog.
type CatalogDefaultApplier struct{}

func (c *CatalogDefaultApplier) Domain() string { return "defaults" }

func (c *CatalogDefaultApplier) ApplyDefaults(cfg *Config) error {
	d := &cfg.Defaults
	setString(&d.BusinessName, "Our Company")
	setString(&d.WebsiteURL, "https://example.com")
	setString(&d.PrimaryKeyword, "Services")
	setString(&d.CTAText, "Contact us today for a free consultation!")
	setString(&d.AvailableLanguage, "English")
	setString(&d.BusinessType, "Service Business")
	setString(&d.Tone, "Professional")
	setString(&d.WeekdayHours, "9:00 AM - 5:00 PM")
	setString(&d.SundayHours, "Closed")
	setString(&d.HoursSummary, "7 days a week")
	setString(&d.HoursSchema, "Mo-Fr 09:00-17:00")
	setString(&d.State, "TX")
	setString(&d.City, "Local Area")
	setString(&d.Country, "USA")
	setString(&d.LastUpdated, "2024-01-01T00:00:00Z")
	setString(&d.Year, "2024")
	setString(&d.PlaceholderImage, "/assets/config/placeholder-image.png")
	setString(&d.ThemeColor, "#3B82F6")

	s := &d.PortfolioStats
	if s.TotalProjects == 0 {
		s.TotalProjects = 500
	}
	if s.HappyClients == 0 {
		s.HappyClients = 450
	}
	if s.YearsExperience == 0 {
		s.YearsExperience = 10
	}
	if s.AverageRating == 0 {
		s.AverageRating = 4.9
	}
	return nil
}

// EmittersDefaultApplier enables every emitter except blog-posts, which
// would overwrite hand-maintained posts.
type EmittersDefaultApplier struct{}

func (e *EmittersDefaultApplier) Domain() string { return "emitters" }

func (e *EmittersDefaultApplier) ApplyDefaults(cfg *Config) error {
	em := &cfg.Emitters
	for _, flag := range []**bool{&em.Robots, &em.ScrapeData, &em.FAQ, &em.Portfolio, &em.BusinessConfig, &em.SEOConfig} {
		setBool(flag, true)
	}
	setBool(&em.BlogPosts, false)
	return nil
}

func setString(field *string, def string) {
	if *field == "" {
		*field = def
	}
}

func setBool(field **bool, def bool) {
	if *field == nil {
		v := def
		*field = &v
	}
}
