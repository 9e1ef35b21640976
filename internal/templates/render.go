// Package templates renders the .template files of a site: placeholder
// substitution, link markup rewriting and quote escaping, followed by output
// routing, writing and post-write validation.
package templates

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/placeholder"
)

// exampleSlots is the number of numbered EXAMPLE_n placeholders filled from
// the EXAMPLES list.
const exampleSlots = 4

var tokenPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Renderer renders template text against one placeholder set.
type Renderer struct {
	rec *business.Record
	set *placeholder.Set
}

// NewRenderer creates a renderer for rec.
func NewRenderer(rec *business.Record, set *placeholder.Set) *Renderer {
	return &Renderer{rec: rec, set: set}
}

// Rendered is the output of a single render.
type Rendered struct {
	Content string
	// Missing lists unresolved placeholder names once each, in order of
	// first appearance.
	Missing []string
}

// Render substitutes placeholders, rewrites anchors into Link components and
// escapes single quotes outside markup and braced expressions.
func (r *Renderer) Render(src string) Rendered {
	out := r.fillExamples(src)

	var missing []string
	seen := map[string]bool{}
	out = tokenPattern.ReplaceAllStringFunc(out, func(tok string) string {
		name := tokenPattern.FindStringSubmatch(tok)[1]
		if v, ok := r.set.Resolve(name); ok {
			return v
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return ""
	})

	out = RewriteAnchors(out)
	out = EscapeQuotes(out)
	return Rendered{Content: out, Missing: missing}
}

func (r *Renderer) fillExamples(src string) string {
	examples := r.rec.Get(business.KeyExamples).StringList()
	for i := 1; i <= exampleSlots; i++ {
		token := fmt.Sprintf("{{EXAMPLE_%d}}", i)
		if !strings.Contains(src, token) {
			continue
		}
		value := ""
		if i <= len(examples) {
			value = examples[i-1]
		}
		src = strings.ReplaceAll(src, token, value)
	}
	return src
}
