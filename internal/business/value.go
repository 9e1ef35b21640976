package business

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the shapes a business record value can take.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is an immutable node of the business record. Scalars keep the text
// they were written with; maps keep their keys in document order.
type Value struct {
	kind Kind
	text string
	list []Value
	m    *Map
}

// Null is the zero Value.
var Null = Value{}

// String constructs a string scalar.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Int constructs an integer scalar.
func Int(n int64) Value { return Value{kind: KindInt, text: strconv.FormatInt(n, 10)} }

// Float constructs a float scalar.
func Float(f float64) Value {
	return Value{kind: KindFloat, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Bool constructs a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, text: strconv.FormatBool(b)} }

// List constructs a list value. The slice is copied.
func List(items ...Value) Value {
	return Value{kind: KindList, list: append([]Value{}, items...)}
}

// Strings constructs a list of string scalars.
func Strings(items ...string) Value {
	vs := make([]Value, len(items))
	for i, s := range items {
		vs[i] = String(s)
	}
	return Value{kind: KindList, list: vs}
}

// MapOf constructs a map value from an ordered Map.
func MapOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// Kind returns the value's shape.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsList() bool   { return v.kind == KindList }
func (v Value) IsMap() bool    { return v.kind == KindMap }
func (v Value) IsScalar() bool { return v.kind != KindList && v.kind != KindMap && v.kind != KindNull }

// IsEmpty reports null, empty strings, and empty collections.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.text == ""
	case KindList:
		return len(v.list) == 0
	case KindMap:
		return v.m.Len() == 0
	default:
		return false
	}
}

// Items returns the elements of a list value, or nil.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Len returns the number of list items or map entries.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return v.m.Len()
	default:
		return 0
	}
}

// Map returns the map of a map value, or nil. Read methods on a nil *Map
// behave as on an empty map.
func (v Value) Map() *Map {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}

// Get looks up key in a map value. Non-maps yield Null.
func (v Value) Get(key string) Value {
	return v.Map().Get(key)
}

// Text returns the plain string form of the value: scalars as written,
// null as the empty string, collections as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindList, KindMap:
		b, err := v.marshal("")
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return v.text
	}
}

// StringOr returns the scalar text, or def when the value is null or empty.
func (v Value) StringOr(def string) string {
	if v.IsEmpty() || !v.IsScalar() {
		return def
	}
	return v.text
}

// StringList returns the plain string form of every list item.
func (v Value) StringList() []string {
	out := make([]string, 0, len(v.list))
	for _, item := range v.Items() {
		out = append(out, item.Text())
	}
	return out
}

// MarshalJSON encodes the value with map keys in document order and without
// HTML escaping.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.marshal("")
}

// IndentJSON renders the value as JSON with a two-space indent.
func (v Value) IndentJSON() (string, error) {
	b, err := v.marshal("  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (v Value) marshal(indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf, indent, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer, indent string, depth int) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		b, err := strconv.ParseBool(v.text)
		if err != nil {
			return encodeString(buf, v.text)
		}
		buf.WriteString(strconv.FormatBool(b))
	case KindInt:
		n, err := strconv.ParseInt(v.text, 0, 64)
		if err != nil {
			return encodeString(buf, v.text)
		}
		buf.WriteString(strconv.FormatInt(n, 10))
	case KindFloat:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			// .inf and .nan have no JSON literal.
			return encodeString(buf, v.text)
		}
		buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	case KindString:
		return encodeString(buf, v.text)
	case KindList:
		if len(v.list) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			if err := item.encode(buf, indent, depth+1); err != nil {
				return err
			}
		}
		newline(buf, indent, depth)
		buf.WriteByte(']')
	case KindMap:
		if v.m.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for i, key := range v.m.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			if err := v.m.Get(key).encode(buf, indent, depth+1); err != nil {
				return err
			}
		}
		newline(buf, indent, depth)
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown value kind %d", v.kind)
	}
	return nil
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder appends a newline after every value.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Map is an insertion-ordered string-keyed map.
type Map struct {
	keys []string
	vals map[string]Value
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{vals: map[string]Value{}}
}

// Set inserts or replaces key. Replacing keeps the original position.
func (m *Map) Set(key string, v Value) *Map {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

// Get returns the value for key, or Null.
func (m *Map) Get(key string) Value {
	if m == nil {
		return Null
	}
	return m.vals[key]
}

// Lookup returns the value for key and whether it was present.
func (m *Map) Lookup(key string) (Value, bool) {
	if m == nil {
		return Null, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Fold looks up key as written, then lower-cased.
func (m *Map) Fold(key string) Value {
	if v, ok := m.Lookup(key); ok && !v.IsNull() {
		return v
	}
	return m.Get(strings.ToLower(key))
}
