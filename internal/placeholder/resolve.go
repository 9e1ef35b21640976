// Package placeholder resolves {{NAME}} tokens against the business record,
// falls back to a synthesized catalog of derived fields and renders the
// resolved value as substitution text.
package placeholder

import (
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
)

// SupportingTopicsMD renders SUPPORTING_TOPICS when nothing else provides it.
const SupportingTopicsMD = "SUPPORTING_TOPICS_MD"

// Set is the placeholder lookup for one render. Explicit record fields win
// over synthesized values.
type Set struct {
	rec     *business.Record
	derived map[string]business.Value
}

// NewSet synthesizes the derived catalog for rec.
func NewSet(rec *business.Record, defaults config.Defaults) *Set {
	return &Set{rec: rec, derived: Synthesize(rec, defaults)}
}

// Lookup resolves name to a value. Dotted names walk nested maps; a
// two-segment path that misses is retried with the second segment
// lower-cased. Flat names consult the record, treating null and empty
// values as absent, then the synthesized catalog.
func (s *Set) Lookup(name string) (business.Value, bool) {
	if strings.Contains(name, ".") {
		return s.lookupPath(name)
	}
	if v := s.rec.Get(name); !v.IsEmpty() {
		return v, true
	}
	v, ok := s.derived[name]
	return v, ok
}

func (s *Set) lookupPath(name string) (business.Value, bool) {
	if v, ok := s.rec.Path(name); ok && !v.IsNull() {
		return v, true
	}
	parts := strings.Split(name, ".")
	if len(parts) != 2 {
		return business.Null, false
	}
	v, ok := s.rec.Section(parts[0]).Lookup(strings.ToLower(parts[1]))
	if !ok || v.IsNull() {
		return business.Null, false
	}
	return v, true
}

// Resolve returns the substitution text for name and whether it resolved.
func (s *Set) Resolve(name string) (string, bool) {
	if v, ok := s.Lookup(name); ok {
		return Render(name, v), true
	}
	if name == SupportingTopicsMD {
		if topics := s.rec.Section(business.KeySupportingTopics); topics != nil {
			return SupportingTopicsMarkdown(topics), true
		}
	}
	return "", false
}

// Derived returns a synthesized value by name.
func (s *Set) Derived(name string) business.Value {
	return s.derived[name]
}
