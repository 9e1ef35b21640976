package placeholder

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

// Synthesize builds the derived placeholder catalog from the record and the
// configured fallbacks. It never fails: absent sub-fields yield empty values
// or the configured default.
func Synthesize(rec *business.Record, d config.Defaults) map[string]business.Value {
	meta := rec.Section(business.KeyMeta)
	locations := rec.Get(business.KeyLocations)
	if !locations.IsList() {
		locations = business.List()
	}

	serviceURLs := serviceURLList(rec)

	blogLinks := make([]string, 0)
	for _, topic := range rec.BlogTopics() {
		blogLinks = append(blogLinks, slug.BlogPath(topic))
	}

	topNames := make([]string, 0, len(rec.Services()))
	for _, s := range rec.Services() {
		topNames = append(topNames, s.Name)
	}

	socialURLs := make([]string, 0, len(rec.Social()))
	for _, p := range rec.Social() {
		socialURLs = append(socialURLs, p.URL)
	}

	return map[string]business.Value{
		"BUSINESS_NAME":   business.String(rec.BusinessName(d.BusinessName)),
		"PRIMARY_KEYWORD": business.String(rec.String(business.KeyPrimaryKeyword, d.PrimaryKeyword)),
		"WEBSITE_URL":     business.String(rec.WebsiteURL(d.WebsiteURL)),
		"LOCATIONS_MD":    locations,
		"SERVICES_MD":     business.Strings(rec.CoreServiceNames()...),
		"SERVICES":        business.Strings(rec.CoreServiceNames()...),
		"CTA_TEXT":        business.String(rec.String(business.KeyCTAText, d.CTAText)),

		"META_TITLE":       business.String(meta.Fold("TITLE").Text()),
		"META_DESCRIPTION": business.String(meta.Fold("DESCRIPTION").Text()),
		"KEYWORDS_MD":      business.Strings(keywords(meta.Fold("KEYWORDS"))...),

		"PAGE_TITLE":            business.String(rec.String("PAGE_TITLE", "")),
		"PAGE_META_DESCRIPTION": business.String(rec.String("PAGE_META_DESCRIPTION", "")),
		"PAGE_KEYWORDS_MD":      business.Strings(rec.Get("PAGE_KEYWORDS").StringList()...),
		"PAGE_URL_SLUG":         business.String(rec.String("PAGE_URL_SLUG", "")),
		"PAGE_CONTENT":          business.String(rec.String("PAGE_CONTENT", "")),

		"SERVICES_URLS":    serviceURLs,
		"SERVICES_URLS_MD": serviceURLs,
		"BLOG_LINKS_MD":    business.Strings(blogLinks...),
		"CONTACT_MD":       business.String(ContactLine(rec)),

		"LOCATIONS_ARRAY":       business.Strings(rec.LocationLabels()...),
		"SERVICES_ARRAY":        servicesArray(rec, topNames),
		"ALL_SERVICES_ARRAY":    business.Strings(rec.AllServiceNames()...),
		"SOCIAL_PROFILES_ARRAY": business.Strings(socialURLs...),
		"AREA_SERVED":           business.String(AreaServed(rec)),
		"AVAILABLE_LANGUAGE":    business.String(rec.String("AVAILABLE_LANGUAGE", d.AvailableLanguage)),
	}
}

// serviceURLList prefers an explicit CORE_SERVICES_URLS list, then
// SERVICES_URLS, and only then derives one URL per core service. Explicit
// lists are used whole, including flattened sub-service entries.
func serviceURLList(rec *business.Record) business.Value {
	for _, key := range []string{business.KeyCoreServicesURLs, "SERVICES_URLS"} {
		if explicit := rec.Get(key); explicit.IsList() && explicit.Len() > 0 {
			return explicit
		}
	}
	return business.Strings(rec.CoreServiceURLs()...)
}

// ContactLine renders "Phone: <phone> | Email: <email>" from CONTACT.
func ContactLine(rec *business.Record) string {
	return fmt.Sprintf("Phone: %s | Email: %s",
		rec.Field(business.KeyContact, "PHONE"),
		rec.Field(business.KeyContact, "EMAIL"))
}

// AreaServed joins the location labels with ", ". An explicit AREA_SERVED
// field takes precedence.
func AreaServed(rec *business.Record) string {
	if explicit := rec.String("AREA_SERVED", ""); explicit != "" {
		return explicit
	}
	labels := make([]string, 0, len(rec.Locations()))
	for _, l := range rec.Locations() {
		label := l.Label()
		if label == "" && l.Structured {
			continue
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

func servicesArray(rec *business.Record, topNames []string) business.Value {
	if all := rec.Get(business.KeyAllServices); !all.IsEmpty() {
		return all
	}
	return business.Strings(topNames...)
}

// keywords accepts META keywords as a list or a comma-separated string.
func keywords(v business.Value) []string {
	if v.IsList() {
		return v.StringList()
	}
	var out []string
	for _, k := range strings.Split(v.Text(), ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
