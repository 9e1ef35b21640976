package placeholder

import (
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
)

// renderRule turns a resolved value into substitution text. Rules are tried
// in order; the first match wins.
type renderRule struct {
	name   string
	match  func(name string, v business.Value) bool
	render func(v business.Value) string
}

// jsonArrayNames are list placeholders that always render as JSON arrays.
var jsonArrayNames = map[string]bool{
	"BLOG_TOPICS": true,
	"SERVICES":    true,
	"LOCATIONS":   true,
}

var renderRules = []renderRule{
	{
		name: "json-array",
		match: func(name string, v business.Value) bool {
			return v.IsList() && (strings.HasSuffix(name, "_ARRAY") || jsonArrayNames[name])
		},
		render: indentJSON,
	},
	{
		name: "markdown-list",
		match: func(name string, v business.Value) bool {
			return v.IsList() && strings.HasSuffix(name, "_MD")
		},
		render: markdownList,
	},
	{
		name: "location-summary",
		match: func(_ string, v business.Value) bool {
			if !v.IsList() {
				return false
			}
			for _, item := range v.Items() {
				if !item.IsMap() {
					return false
				}
			}
			return true
		},
		render: func(v business.Value) string {
			parts := make([]string, 0, v.Len())
			for _, item := range v.Items() {
				parts = append(parts, itemText(item))
			}
			return strings.Join(parts, ", ")
		},
	},
	{
		name:  "comma-list",
		match: func(_ string, v business.Value) bool { return v.IsList() },
		render: func(v business.Value) string {
			return strings.Join(v.StringList(), ", ")
		},
	},
	{
		name:   "json-object",
		match:  func(_ string, v business.Value) bool { return v.IsMap() },
		render: indentJSON,
	},
}

// Render converts v to the text substituted for the placeholder name.
func Render(name string, v business.Value) string {
	for _, rule := range renderRules {
		if rule.match(name, v) {
			return rule.render(v)
		}
	}
	return v.Text()
}

// markdownList renders one "- item" bullet per line without a trailing
// newline. An empty list renders as the empty string.
func markdownList(v business.Value) string {
	lines := make([]string, 0, v.Len())
	for _, item := range v.Items() {
		lines = append(lines, "- "+itemText(item))
	}
	return strings.Join(lines, "\n")
}

// itemText renders a list element. Location records become "City-State" or
// whichever part is present; other records fall back to compact JSON.
func itemText(item business.Value) string {
	if item.IsMap() {
		if loc := business.LocationOf(item); loc.Dashed() != "" {
			return loc.Dashed()
		}
	}
	return item.Text()
}

func indentJSON(v business.Value) string {
	s, err := v.IndentJSON()
	if err != nil {
		return v.Text()
	}
	return s
}

// SupportingTopicsMarkdown renders a pillar -> subtopics mapping as one
// "## <pillar> Supporting Pages" section per pillar.
func SupportingTopicsMarkdown(topics *business.Map) string {
	var b strings.Builder
	for _, pillar := range topics.Keys() {
		b.WriteString("## " + pillar + " Supporting Pages\n\n")
		subs := topics.Get(pillar)
		if subs.IsList() {
			for _, s := range subs.StringList() {
				b.WriteString("- " + s + "\n")
			}
		} else if !subs.IsNull() {
			b.WriteString("- " + subs.Text() + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
