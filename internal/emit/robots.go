package emit

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

var (
	robotsDisallow = []string{"/admin/", "/private/", "/api/", "/_next/", "/static/"}
	robotsAllow    = []string{"/", "/about/", "/contact/", "/services/", "/blog/"}
)

// Robots writes public/robots.txt.
type Robots struct{}

func (Robots) Name() string { return "robots" }

func (Robots) Path(p config.PathsConfig) string { return filepath.Join(p.PublicDir, "robots.txt") }

func (r Robots) Emit(ctx *Context) (Result, error) {
	return write(r.Name(), r.Path(ctx.Paths), []byte(RobotsTxt(ctx.websiteURL())))
}

// RobotsTxt renders the crawl policy for a site.
func RobotsTxt(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n\n")

	b.WriteString("# Disallow admin and private areas\n")
	for _, p := range robotsDisallow {
		b.WriteString("Disallow: " + p + "\n")
	}

	b.WriteString("\n# Allow important pages\n")
	for _, p := range robotsAllow {
		b.WriteString("Allow: " + p + "\n")
	}

	b.WriteString("\n# Sitemap\nSitemap: " + siteURL + "/sitemap.xml\n")
	b.WriteString("\n# Crawl delay\nCrawl-delay: 1\n")
	return b.String()
}
