package templates

import (
	"regexp"
	"strings"
)

var (
	anchorPattern    = regexp.MustCompile(`(?is)<a\s+([^>]*?)href=["']([^"']*)["']([^>]*?)>([^<]*)</a>`)
	protectedPattern = regexp.MustCompile(`<[^>]*>|\{[^}]*\}`)
)

// RewriteAnchors turns <a href="...">text</a> spans into <Link> components.
// The href, any other attributes and the link text are kept verbatim.
func RewriteAnchors(s string) string {
	return anchorPattern.ReplaceAllStringFunc(s, func(span string) string {
		m := anchorPattern.FindStringSubmatch(span)
		before, href, after, text := m[1], m[2], m[3], m[4]

		var b strings.Builder
		b.WriteString(`<Link href="`)
		b.WriteString(href)
		b.WriteByte('"')
		if attrs := joinAttrs(before, after); attrs != "" {
			b.WriteByte(' ')
			b.WriteString(attrs)
		}
		b.WriteByte('>')
		b.WriteString(text)
		b.WriteString("</Link>")
		return b.String()
	})
}

func joinAttrs(before, after string) string {
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	switch {
	case before == "":
		return after
	case after == "":
		return before
	default:
		return before + " " + after
	}
}

// EscapeQuotes replaces ' with &apos; everywhere except inside markup tags
// and {...} expressions, which are copied through untouched.
func EscapeQuotes(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range protectedPattern.FindAllStringIndex(s, -1) {
		b.WriteString(strings.ReplaceAll(s[last:loc[0]], "'", "&apos;"))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(s[last:], "'", "&apos;"))
	return b.String()
}
