// Package business loads the business record (business.yaml) into an
// ordered, read-only value tree and resolves the alternate legacy shapes of
// services, locations and social links into canonical views once, at load.
package business

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Load reads and parses the business file at path. A missing file, a parse
// failure or a document whose root is not a mapping are fatal errors.
func Load(path string) (*Record, error) {
	// #nosec G304 -- path is the operator-configured business file.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, sgerrors.BusinessFileNotFound(path)
		}
		return nil, sgerrors.BusinessParseFailed(path, err)
	}

	rec, err := Parse(data)
	if err != nil {
		if errors.Is(err, errNotMapping) {
			return nil, sgerrors.BusinessNotMapping(path)
		}
		return nil, sgerrors.BusinessParseFailed(path, err)
	}

	slog.Info("Loaded business data", logfields.Path(path), logfields.Count(rec.root.Len()))
	return rec, nil
}

var errNotMapping = errors.New("document root is not a mapping")

// Parse decodes a business document from YAML bytes.
func Parse(data []byte) (*Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errNotMapping
	}
	root, err := fromNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if !root.IsMap() {
		return nil, errNotMapping
	}
	return newRecord(root.Map()), nil
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return Null, fmt.Errorf("line %d: dangling alias", n.Line)
		}
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return scalar(n), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return Null, err
			}
			items = append(items, v)
		}
		return Value{kind: KindList, list: items}, nil
	case yaml.MappingNode:
		m := NewMap()
		var merges []*Map
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			v, err := fromNode(vn)
			if err != nil {
				return Null, err
			}
			if k.ShortTag() == "!!merge" {
				merges = append(merges, mergeSources(v)...)
				continue
			}
			m.Set(k.Value, v)
		}
		for _, src := range merges {
			for _, key := range src.Keys() {
				if !m.Has(key) {
					m.Set(key, src.Get(key))
				}
			}
		}
		return MapOf(m), nil
	default:
		return Null, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func mergeSources(v Value) []*Map {
	if v.IsMap() {
		return []*Map{v.Map()}
	}
	var out []*Map
	for _, item := range v.Items() {
		if item.IsMap() {
			out = append(out, item.Map())
		}
	}
	return out
}

func scalar(n *yaml.Node) Value {
	switch n.ShortTag() {
	case "!!null":
		return Null
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return Bool(b)
		}
		return Value{kind: KindBool, text: n.Value}
	case "!!int":
		return Value{kind: KindInt, text: n.Value}
	case "!!float":
		return Value{kind: KindFloat, text: n.Value}
	default:
		return String(n.Value)
	}
}
