package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputKind tells how a rendered template is validated after writing.
type OutputKind string

const (
	KindRule OutputKind = "rule"
	KindJSON OutputKind = "json"
)

type route struct {
	suffix string
	ext    string
	kind   OutputKind
}

// routes is matched in order; the bare .template suffix is the fallback.
var routes = []route{
	{suffix: ".mdc.template", ext: ".mdc", kind: KindRule},
	{suffix: ".json.template", ext: ".json", kind: KindJSON},
	{suffix: ".template", ext: ".mdc", kind: KindRule},
}

// Route maps a template file name to its output path: rule documents go to
// rulesDir, JSON documents to publicDir.
func Route(name, rulesDir, publicDir string) (string, OutputKind) {
	for _, r := range routes {
		if base, ok := strings.CutSuffix(name, r.suffix); ok {
			dir := rulesDir
			if r.kind == KindJSON {
				dir = publicDir
			}
			return filepath.Join(dir, base+r.ext), r.kind
		}
	}
	return filepath.Join(rulesDir, name+".mdc"), KindRule
}

// Discover lists the *.template files directly under dir in lexical order.
// A missing directory is reported as an error wrapping os.ErrNotExist.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read templates directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".template") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
