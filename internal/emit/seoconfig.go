package emit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

var seoConfigTemplate = mustAsset("seo-config.ts.tmpl")

// Blocks are matched with at most one level of nested braces, which is all
// the generated blocks contain.
var (
	siteConfigPattern = regexp.MustCompile(`export const siteConfig: SiteConfig = \{[^}]*(?:\{[^}]*\}[^}]*)*\};`)
	seoConfigsPattern = regexp.MustCompile(`export const seoConfigs: Record<string, SEOConfig> = \{[^}]*(?:\{[^}]*\}[^}]*)*\};`)
)

// seoSocialOrder fixes the order of social links in siteConfig.
var seoSocialOrder = []string{"facebook", "twitter", "instagram", "linkedin", "youtube", "pinterest", "nextdoor", "yelp"}

type siteConfigData struct {
	Name          string
	URL           string
	Description   string
	ThemeColor    string
	Copyright     string
	Social        []tsField
	Contact       []tsField
	BusinessHours string
	Services      []string
	Latitude      string
	Longitude     string
}

type seoPage struct {
	Path         string
	Title        string
	Description  string
	Keywords     []string
	Canonical    string
	OGImage      string
	GeoRegion    string
	GeoPlacename string
}

// SEOConfig rewrites the siteConfig and seoConfigs blocks of an existing
// lib/seo-config.ts in place. Everything outside the two blocks is kept.
type SEOConfig struct{}

func (SEOConfig) Name() string { return "seo-config" }

func (SEOConfig) Path(p config.PathsConfig) string { return filepath.Join(p.LibDir, "seo-config.ts") }

func (s SEOConfig) Emit(ctx *Context) (Result, error) {
	path := s.Path(ctx.Paths)
	log := ctx.logger().With(logfields.Emitter(s.Name()), logfields.Path(path))
	res := Result{Emitter: s.Name(), Path: path}

	// #nosec G304 -- path is derived from the configured lib directory.
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("SEO config not found, skipping update")
		res.Skipped = true
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s not found, skipping update", path))
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("read seo config: %w", err)
	}

	patched, warnings, err := PatchSEOConfig(string(existing), ctx)
	if err != nil {
		return res, err
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	out, err := write(s.Name(), path, []byte(patched))
	out.Warnings = warnings
	return out, err
}

// PatchSEOConfig replaces the two generated blocks in src. A block that
// cannot be found is reported as a warning and left alone.
func PatchSEOConfig(src string, ctx *Context) (string, []string, error) {
	site, err := execute(seoConfigTemplate, "siteConfig", siteConfigFor(ctx))
	if err != nil {
		return "", nil, err
	}
	pages, err := execute(seoConfigTemplate, "seoConfigs", seoPagesFor(ctx))
	if err != nil {
		return "", nil, err
	}

	var warnings []string
	if siteConfigPattern.MatchString(src) {
		src = siteConfigPattern.ReplaceAllLiteralString(src, site)
	} else {
		warnings = append(warnings, "Could not find siteConfig pattern in file")
	}
	if seoConfigsPattern.MatchString(src) {
		src = seoConfigsPattern.ReplaceAllLiteralString(src, pages)
	} else {
		warnings = append(warnings, "Could not find seoConfigs pattern in file")
	}
	return src, warnings, nil
}

func siteConfigFor(ctx *Context) siteConfigData {
	rec := ctx.Record
	d := ctx.Defaults
	name := ctx.businessName()
	contact := func(key, tsName string) tsField {
		return tsField{Key: tsName, Value: rec.Field(business.KeyContact, key)}
	}
	maps := rec.Section(business.KeyGoogleMaps)

	address := rec.FieldOr(business.KeyContact, "STREET", rec.Field(business.KeyContact, "ADDRESS"))

	return siteConfigData{
		Name:        name,
		URL:         ctx.websiteURL(),
		Description: rec.Section(business.KeyMeta).Fold("DESCRIPTION").Text(),
		ThemeColor:  d.ThemeColor,
		Copyright:   fmt.Sprintf("© %s %s. All rights reserved.", d.Year, name),
		Social:      seoSocial(rec, name),
		Contact: []tsField{
			contact("PHONE", "phone"),
			contact("EMAIL", "email"),
			{Key: "address", Value: address},
			contact("CITY", "city"),
			contact("STATE", "state"),
			contact("ZIP", "zipCode"),
			{Key: "country", Value: d.Country},
		},
		BusinessHours: rec.FieldOr(business.KeyHours, "MONDAY", d.WeekdayHours),
		Services:      nonNil(rec.CoreServiceNames()),
		Latitude:      maps.Fold("LATITUDE").StringOr("0"),
		Longitude:     maps.Fold("LONGITUDE").StringOr("0"),
	}
}

// seoSocial lists the known platforms that have a URL. A Twitter profile
// also yields twitterHandle, taken from the last path segment of its URL.
func seoSocial(rec *business.Record, name string) []tsField {
	var out []tsField
	for _, platform := range seoSocialOrder {
		url := rec.SocialURL(platform)
		if url == "" {
			continue
		}
		out = append(out, tsField{Key: platform, Value: url})
		if platform == "twitter" {
			out = append(out, tsField{Key: "twitterHandle", Value: twitterHandle(url, name)})
		}
	}
	return out
}

func twitterHandle(url, name string) string {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if handle := parts[len(parts)-1]; handle != "" {
		return handle
	}
	return strings.ReplaceAll(slug.Lower(name), " ", "")
}

func seoPagesFor(ctx *Context) []seoPage {
	rec := ctx.Record
	d := ctx.Defaults
	name := ctx.businessName()
	site := ctx.websiteURL()
	keyword := ctx.primaryKeyword()
	kwLower := slug.Lower(keyword)
	phone := rec.Field(business.KeyContact, "PHONE")
	city := rec.Field(business.KeyContact, "CITY")
	state := rec.FieldOr(business.KeyContact, "STATE", d.State)
	meta := rec.Section(business.KeyMeta)
	core := rec.CoreServiceNames()
	cities := strings.Join(head(rec.LocationLabels(), 4), ", ")

	keywords := []string{keyword}
	for _, s := range head(core, 3) {
		keywords = append(keywords, slug.Lower(s))
	}
	with := func(extra ...string) []string {
		return append(append([]string{}, keywords...), extra...)
	}

	page := func(path, title, description string, kw []string) seoPage {
		return seoPage{
			Path:        path,
			Title:       title,
			Description: description,
			Keywords:    kw,
			Canonical:   site + path,
			OGImage:     site + "/og.png",
		}
	}

	home := page("/", meta.Fold("TITLE").Text(), meta.Fold("DESCRIPTION").Text(), with())
	home.GeoRegion = state + "-US"
	home.GeoPlacename = city + ", " + state

	return []seoPage{
		home,
		page("/about",
			fmt.Sprintf("About %s | Professional %s", name, keyword),
			fmt.Sprintf("Learn about %s, your trusted %s provider in %s. Expert team with years of experience.", name, keyword, cities),
			with("about us", slug.Lower(name))),
		page("/contact",
			fmt.Sprintf("Contact %s | %s", name, phone),
			fmt.Sprintf("Contact %s for professional %s in %s. Call %s or email us today!", name, kwLower, cities, phone),
			[]string{"contact", "get quote", kwLower, city}),
		page("/services",
			fmt.Sprintf("%s | %s", keyword, name),
			fmt.Sprintf("Complete %s including %s in %s. Professional quality guaranteed.", kwLower, strings.Join(head(core, 3), ", "), cities),
			with()),
		page("/portfolio",
			fmt.Sprintf("Portfolio | %s Projects", name),
			fmt.Sprintf("View our %s portfolio. Quality projects across %s. See our work and get inspired!", kwLower, cities),
			[]string{"portfolio", "projects", "gallery", kwLower}),
		page("/service-areas",
			fmt.Sprintf("Service Areas | %s", name),
			fmt.Sprintf("We serve %s and surrounding areas. Professional %s throughout the region.", cities, kwLower),
			[]string{"service areas", "locations", city, state}),
	}
}
