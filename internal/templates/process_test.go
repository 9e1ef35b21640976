package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/output"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		want string
		kind OutputKind
	}{
		{"seo.mdc.template", filepath.Join("rules", "seo.mdc"), KindRule},
		{"schema.json.template", filepath.Join("public", "schema.json"), KindJSON},
		{"brand.template", filepath.Join("rules", "brand.mdc"), KindRule},
	}
	for _, tt := range tests {
		got, kind := Route(tt.name, "rules", "public")
		require.Equal(t, tt.want, got, tt.name)
		require.Equal(t, tt.kind, kind, tt.name)
	}
}

func TestDiscover_SortedTemplatesOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mdc.template", "a.json.template", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.template"), 0o750))

	names, err := Discover(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.json.template", "b.mdc.template"}, names)

	_, err = Discover(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func newProcessor(t *testing.T, doc string) *Processor {
	t.Helper()
	root := t.TempDir()
	p := &Processor{
		Renderer:     newRenderer(t, doc),
		TemplatesDir: filepath.Join(root, "templates"),
		RulesDir:     filepath.Join(root, "rules"),
		PublicDir:    filepath.Join(root, "public"),
	}
	require.NoError(t, os.MkdirAll(p.TemplatesDir, 0o750))
	return p
}

func writeTemplate(t *testing.T, p *Processor, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(p.TemplatesDir, name), []byte(body), 0o600))
}

func TestProcess_RuleDocument(t *testing.T) {
	p := newProcessor(t, "BUSINESS_NAME: Green Acres\n")
	writeTemplate(t, p, "brand.mdc.template", "---\ndescription: {{BUSINESS_NAME}} brand\n---\n# {{BUSINESS_NAME}}\n[Contact]({{CONTACT_URL}})\n")

	res := p.Process("brand.mdc.template")
	require.True(t, res.OK())
	require.Equal(t, filepath.Join(p.RulesDir, "brand.mdc"), res.Output)
	require.Equal(t, output.StatusCreated, res.Write.Status)
	require.Equal(t, []string{"CONTACT_URL"}, res.Missing)
	require.Len(t, res.Warnings, 1)
	require.Contains(t, res.Warnings[0], "Contact")

	// #nosec G304 -- test-controlled path.
	data, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	require.Equal(t, "---\ndescription: Green Acres brand\n---\n# Green Acres\n[Contact]()\n", string(data))

	again := p.Process("brand.mdc.template")
	require.Equal(t, output.StatusUnchanged, again.Write.Status)
}

func TestProcess_JSONDocument(t *testing.T) {
	p := newProcessor(t, "SERVICES: [Mowing, Edging]\n")
	writeTemplate(t, p, "schema.json.template", `{"services": {{SERVICES_ARRAY}}}`)
	writeTemplate(t, p, "broken.json.template", `{"services": {{SERVICES_MD}}}`)

	res := p.Process("schema.json.template")
	require.True(t, res.OK())
	require.Equal(t, KindJSON, res.Kind)
	require.Empty(t, res.Warnings)

	broken := p.Process("broken.json.template")
	require.True(t, broken.OK(), "invalid JSON is a warning, the file stays")
	require.Len(t, broken.Warnings, 1)
	require.FileExists(t, broken.Output)
}

func TestProcess_MissingTemplate(t *testing.T) {
	p := newProcessor(t, "X: 1\n")
	res := p.Process("ghost.mdc.template")
	require.False(t, res.OK())
	require.Empty(t, res.Output)
}
