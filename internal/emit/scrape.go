package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

// maxLocationPages caps location_pages in the scrape summary.
const maxLocationPages = 10

type scrapeData struct {
	WebsiteInfo   websiteInfo   `json:"website_info"`
	Services      []string      `json:"services"`
	Locations     []string      `json:"locations"`
	Contact       scrapeContact `json:"contact"`
	SocialLinks   []string      `json:"social_links"`
	Pages         []page        `json:"pages"`
	ServicePages  []page        `json:"service_pages"`
	LocationPages []page        `json:"location_pages"`
	BlogTopics    []string      `json:"blog_topics"`
	SEOData       seoData       `json:"seo_data"`
}

type websiteInfo struct {
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Description string         `json:"description"`
	Keywords    business.Value `json:"keywords"`
	LastUpdated string         `json:"last_updated"`
}

type scrapeContact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type page struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type seoData struct {
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	TargetLocations   []string `json:"target_locations"`
	BusinessType      string   `json:"business_type"`
	ServiceAreas      []string `json:"service_areas"`
}

// ScrapeData writes public/ai-scrape-data.json, a machine-readable summary
// of the site for crawlers.
type ScrapeData struct{}

func (ScrapeData) Name() string { return "scrape-data" }

func (ScrapeData) Path(p config.PathsConfig) string {
	return filepath.Join(p.PublicDir, "ai-scrape-data.json")
}

func (s ScrapeData) Emit(ctx *Context) (Result, error) {
	return writeJSON(s.Name(), s.Path(ctx.Paths), buildScrapeData(ctx))
}

func buildScrapeData(ctx *Context) scrapeData {
	rec := ctx.Record
	meta := rec.Section(business.KeyMeta)
	name := ctx.businessName()
	keyword := ctx.primaryKeyword()
	locations := nonNil(rec.LocationLabels())
	core := rec.CoreServiceNames()
	areas := strings.Join(head(locations, 4), ", ")

	social := make([]string, 0, len(rec.Social()))
	for _, p := range rec.Social() {
		social = append(social, p.URL)
	}

	servicePages := make([]page, 0, len(core))
	for i, url := range rec.CoreServiceURLs() {
		servicePages = append(servicePages, page{
			Path:        url,
			Title:       fmt.Sprintf("%s Services in %s", core[i], areas),
			Description: fmt.Sprintf("Professional %s services in %s. Expert craftsmanship and %s", core[i], areas, ctx.ctaText()),
			Type:        "service",
		})
	}

	explicitPaths := rec.Get("LOCATIONS_MD").StringList()
	coreLower := slug.Lower(strings.Join(head(core, 3), ", "))
	locationPages := make([]page, 0, len(locations))
	for i, loc := range head(locations, maxLocationPages) {
		path := slug.PlacePath(loc)
		if i < len(explicitPaths) {
			path = explicitPaths[i]
		}
		locationPages = append(locationPages, page{
			Path:        path,
			Title:       fmt.Sprintf("%s in %s", name, loc),
			Description: fmt.Sprintf("Professional %s services in %s", coreLower, loc),
			Type:        "location",
		})
	}

	return scrapeData{
		WebsiteInfo: websiteInfo{
			Name:        name,
			URL:         ctx.websiteURL(),
			Description: meta.Fold("DESCRIPTION").Text(),
			Keywords:    textOrEmpty(meta.Fold("KEYWORDS")),
			LastUpdated: ctx.Defaults.LastUpdated,
		},
		Services:  nonNil(rec.AllServiceNames()),
		Locations: locations,
		Contact: scrapeContact{
			Address: rec.Field(business.KeyContact, "ADDRESS"),
			Phone:   rec.Field(business.KeyContact, "PHONE"),
			Email:   rec.Field(business.KeyContact, "EMAIL"),
		},
		SocialLinks: social,
		Pages: []page{
			{Path: "/", Title: meta.Fold("TITLE").Text(), Description: meta.Fold("DESCRIPTION").Text(), Type: "homepage"},
			{
				Path:        "/about",
				Title:       "About " + name,
				Description: fmt.Sprintf("Learn about our professional %s and expertise", keyword),
				Type:        "about",
			},
			{
				Path:        "/contact",
				Title:       "Contact " + name,
				Description: fmt.Sprintf("Get in touch with our expert team for your %s needs", keyword),
				Type:        "contact",
			},
		},
		ServicePages:  servicePages,
		LocationPages: locationPages,
		BlogTopics:    nonNil(rec.BlogTopics()),
		SEOData: seoData{
			PrimaryKeyword:    keyword,
			SecondaryKeywords: nonNil(head(core, 5)),
			TargetLocations:   locations,
			BusinessType:      rec.FieldOr(business.KeyCategories, "PRIMARY", ctx.Defaults.BusinessType),
			ServiceAreas:      locations,
		},
	}
}
