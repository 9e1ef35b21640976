package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_RuleHeader(t *testing.T) {
	input := []byte("---\ndescription: Local SEO\n---\n# Rules\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("description: Local SEO\n"), fm)
	require.Equal(t, []byte("# Rules\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, _, err := Split([]byte("---\ndescription: x\n# Rules\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF(t *testing.T) {
	input := []byte("---\r\nglobs: '*'\r\n---\r\n# Rules\r\n")

	fm, body, had, style, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "\r\n", style.Newline)
	require.Equal(t, []byte("globs: '*'\r\n"), fm)
	require.Equal(t, []byte("# Rules\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	fm, body, had, _, err := Split([]byte("---\n---\n# Rules\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Rules\n"), body)
}

func TestParseRule_StringGlobs(t *testing.T) {
	h, body, err := ParseRule([]byte("---\ndescription: Services\nglobs: app/**/*.tsx, lib/*.ts\nalwaysApply: true\n---\nBody\n"))
	require.NoError(t, err)
	require.Equal(t, "Services", h.Description)
	require.Equal(t, []string{"app/**/*.tsx", "lib/*.ts"}, h.Globs)
	require.True(t, h.AlwaysApply)
	require.Equal(t, []byte("Body\n"), body)
}

func TestParseRule_ListGlobs(t *testing.T) {
	h, _, err := ParseRule([]byte("---\nglobs:\n  - a.ts\n  - b.ts\n---\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.ts", "b.ts"}, h.Globs)
	require.False(t, h.AlwaysApply)
}

func TestParseRule_NoHeader(t *testing.T) {
	h, body, err := ParseRule([]byte("# Plain\n"))
	require.NoError(t, err)
	require.Equal(t, RuleHeader{}, h)
	require.Equal(t, []byte("# Plain\n"), body)
}

func TestParseRule_BrokenHeader(t *testing.T) {
	// An unquoted substitution containing ": " breaks the header.
	_, _, err := ParseRule([]byte("---\ndescription: Call: now: {\n---\n"))
	require.Error(t, err)
}
