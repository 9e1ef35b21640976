// Package slug derives URL path segments from business record names.
//
// Each kind of name has its own normalization rule; the rules are kept
// distinct because generated URLs must stay stable for existing sites.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Service slugs a service name: lower-cased, spaces to hyphens, parentheses
// stripped and "&" spelled "and".
func Service(name string) string {
	s := lower.String(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return strings.ReplaceAll(s, "&", "and")
}

// ServicePath returns the site path for a service, e.g. "/lawn-care/".
func ServicePath(name string) string {
	return "/" + Service(name) + "/"
}

// Topic slugs a blog topic: lower-cased, spaces to hyphens, commas removed
// and "&" spelled "and".
func Topic(topic string) string {
	s := lower.String(topic)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, "&", "and")
}

// BlogPath returns the blog post path for a topic, e.g. "/blog/lawn-care-tips/".
func BlogPath(topic string) string {
	return "/blog/" + Topic(topic) + "/"
}

// PostID slugs a blog topic for post identifiers. Unlike Topic it keeps "&".
func PostID(topic string) string {
	s := lower.String(topic)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, ",", "")
}

// Keyword slugs a category keyword: lower-cased, spaces to hyphens.
func Keyword(keyword string) string {
	return strings.ReplaceAll(lower.String(keyword), " ", "-")
}

// LocationPath returns the path for a city/state pair, e.g. "/round-rock-tx/".
func LocationPath(city, state string) string {
	return "/" + strings.ReplaceAll(lower.String(city), " ", "-") + "-" + lower.String(state) + "/"
}

// PlacePath returns the path for a free-form place label such as
// "Austin, TX", giving "/austin-tx/".
func PlacePath(label string) string {
	s := lower.String(label)
	s = strings.ReplaceAll(s, ", ", "-")
	return "/" + strings.ReplaceAll(s, " ", "-") + "/"
}

// Lower lower-cases s with Unicode-aware case mapping.
func Lower(s string) string {
	return lower.String(s)
}
