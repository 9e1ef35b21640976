package emit

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

var businessConfigTemplate = mustAsset("business-config.ts.tmpl")

var weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}

type tsService struct {
	Name        string
	URL         string
	SubServices []tsService
}

type tsLocation struct {
	City  string
	State string
	URL   string
}

type tsField struct {
	Key   string
	Value string
}

type businessConfigData struct {
	Name           string
	WebsiteURL     string
	Tone           string
	LogoURL        string
	PrimaryKeyword string
	CTAText        string

	PrimaryCategory     string
	SecondaryCategories []string

	Services  []tsService
	Locations []tsLocation
	Contact   []tsField
	Hours     []tsField
	HoursSpec string
	Maps      []tsField
	Social    []tsField
	Topics    []string
	Meta      []tsField
}

// BusinessConfig writes lib/business-config.ts, the typed constants and
// helpers the site components import.
type BusinessConfig struct{}

func (BusinessConfig) Name() string { return "business-config" }

func (BusinessConfig) Path(p config.PathsConfig) string {
	return filepath.Join(p.LibDir, "business-config.ts")
}

func (b BusinessConfig) Emit(ctx *Context) (Result, error) {
	src, err := RenderBusinessConfig(ctx)
	if err != nil {
		return Result{Emitter: b.Name(), Path: b.Path(ctx.Paths)}, err
	}
	return write(b.Name(), b.Path(ctx.Paths), []byte(src))
}

// RenderBusinessConfig returns the TypeScript module source.
func RenderBusinessConfig(ctx *Context) (string, error) {
	return execute(businessConfigTemplate, "business-config.ts.tmpl", businessConfigFor(ctx))
}

func businessConfigFor(ctx *Context) businessConfigData {
	rec := ctx.Record
	d := ctx.Defaults
	site := ctx.websiteURL()
	categories := rec.Section(business.KeyCategories)
	meta := rec.Section(business.KeyMeta)
	maps := rec.Section(business.KeyGoogleMaps)

	data := businessConfigData{
		Name:                ctx.businessName(),
		WebsiteURL:          site,
		Tone:                rec.String("TONE", d.Tone),
		LogoURL:             rec.String("LOGO_URL", site+"/logo.png"),
		PrimaryKeyword:      ctx.primaryKeyword(),
		CTAText:             ctx.ctaText(),
		PrimaryCategory:     categories.Fold("PRIMARY").StringOr(d.BusinessType),
		SecondaryCategories: categories.Fold("SECONDARY").StringList(),
		Services:            tsServices(rec.Services()),
		HoursSpec:           rec.String("BUSINESS_HOURS_SCHEMA", d.HoursSchema),
		Topics:              rec.BlogTopics(),
	}

	for _, l := range rec.Locations() {
		data.Locations = append(data.Locations, tsLocationOf(l))
	}

	contact := func(key, tsName, def string) tsField {
		return tsField{Key: tsName, Value: rec.FieldOr(business.KeyContact, key, def)}
	}
	data.Contact = []tsField{
		contact("ADDRESS", "address", ""),
		contact("STREET", "street", ""),
		contact("CITY", "city", ""),
		contact("STATE", "state", ""),
		contact("ZIP", "zip", ""),
		contact("AREA_CODE", "areaCode", ""),
		contact("PHONE", "phone", ""),
		contact("EMAIL", "email", ""),
		contact("ADDRESS_VISIBILITY", "addressVisibility", "HIDDEN"),
	}

	for _, day := range weekdays {
		data.Hours = append(data.Hours, tsField{Key: slug.Lower(day), Value: rec.FieldOr(business.KeyHours, day, d.WeekdayHours)})
	}
	data.Hours = append(data.Hours, tsField{Key: "sunday", Value: rec.FieldOr(business.KeyHours, "SUNDAY", d.SundayHours)})

	embedCode := maps.Fold("EMBED_CODE").Text()
	data.Maps = []tsField{
		{Key: "shortLink", Value: maps.Fold("SHORT_LINK").Text()},
		{Key: "fullUrl", Value: maps.Fold("FULL_URL").Text()},
		{Key: "embedCode", Value: embedCode},
		{Key: "embedSrc", Value: embedSrc(embedCode)},
		{Key: "latitude", Value: maps.Fold("LATITUDE").StringOr("0")},
		{Key: "longitude", Value: maps.Fold("LONGITUDE").StringOr("0")},
	}

	for _, p := range rec.Social() {
		data.Social = append(data.Social, tsField{Key: slug.Lower(p.Platform), Value: p.URL})
	}

	data.Meta = []tsField{
		{Key: "title", Value: meta.Fold("TITLE").Text()},
		{Key: "description", Value: meta.Fold("DESCRIPTION").Text()},
		{Key: "keywords", Value: metaKeywords(meta.Fold("KEYWORDS"))},
	}
	return data
}

func tsServices(services []business.Service) []tsService {
	out := make([]tsService, 0, len(services))
	for _, s := range services {
		out = append(out, tsService{Name: s.Name, URL: s.URL, SubServices: tsServices(s.SubServices)})
	}
	return out
}

// tsLocationOf converts a location. Flat labels keep their text as the city
// and get a slugged URL.
func tsLocationOf(l business.Location) tsLocation {
	if !l.Structured {
		return tsLocation{City: l.Text, URL: slug.PlacePath(l.Text)}
	}
	url := l.URL
	if url == "" {
		url = slug.LocationPath(l.City, l.State)
	}
	return tsLocation{City: l.City, State: l.State, URL: url}
}

// metaKeywords renders META keywords as one comma-separated string.
func metaKeywords(v business.Value) string {
	if !v.IsList() {
		return v.Text()
	}
	return strings.Join(v.StringList(), ", ")
}
