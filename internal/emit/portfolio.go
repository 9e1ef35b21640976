package emit

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

// maxProjects caps the generated portfolio.
const maxProjects = 5

var projectFeatures = []string{"Professional Installation", "Quality Materials", "Expert Service", "Customer Satisfaction"}

// Project is one entry of data/portfolio.json.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Client      string   `json:"client"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
}

type portfolioDocument struct {
	Stats    config.PortfolioStats `json:"stats"`
	Projects []Project             `json:"projects"`
}

// Portfolio writes data/portfolio.json with one sample project per core
// service, up to five.
type Portfolio struct{}

func (Portfolio) Name() string { return "portfolio" }

func (Portfolio) Path(p config.PathsConfig) string { return filepath.Join(p.DataDir, "portfolio.json") }

func (p Portfolio) Emit(ctx *Context) (Result, error) {
	doc := portfolioDocument{Stats: ctx.Defaults.PortfolioStats, Projects: BuildProjects(ctx)}
	return writeJSON(p.Name(), p.Path(ctx.Paths), doc)
}

// BuildProjects returns min(5, core services) projects. Locations are
// assigned round robin.
func BuildProjects(ctx *Context) []Project {
	d := ctx.Defaults
	locations := ctx.Record.Locations()
	services := head(ctx.Record.CoreServiceNames(), maxProjects)

	projects := make([]Project, 0, len(services))
	for i, service := range services {
		city, state := d.City, d.State
		if len(locations) > 0 {
			city, state = cityState(locations[i%len(locations)], d)
		}
		client := "Residential Client"
		if i%2 == 1 {
			client = "Commercial Client"
		}
		projects = append(projects, Project{
			ID:          i + 1,
			Title:       fmt.Sprintf("Professional %s Project", service),
			Category:    service,
			Image:       d.PlaceholderImage,
			Date:        d.Year,
			Location:    city + ", " + state,
			Description: fmt.Sprintf("Complete %s with professional installation and quality materials.", slug.Lower(service)),
			Features:    projectFeatures,
			Client:      client,
			Duration:    "1-2 Days",
			Tags:        []string{service, city, state},
		})
	}
	return projects
}

// cityState splits a location for display. Flat entries are treated as the
// city in the default state.
func cityState(l business.Location, d config.Defaults) (string, string) {
	if !l.Structured {
		return l.Text, d.State
	}
	city, state := l.City, l.State
	if city == "" {
		city = d.City
	}
	if state == "" {
		state = d.State
	}
	return city, state
}
