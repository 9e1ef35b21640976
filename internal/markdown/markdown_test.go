package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [our services](/services/) for details."))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "/services/", links[0].Destination)
	require.Equal(t, "our services", links[0].Text)
}

func TestExtractLinks_ImageAndAuto(t *testing.T) {
	links := ExtractLinks([]byte("![Logo](/logo.png)\n\n<https://example.com/path>\n"))
	require.Len(t, links, 2)
	require.Equal(t, LinkKindImage, links[0].Kind)
	require.Equal(t, "/logo.png", links[0].Destination)
	require.Equal(t, LinkKindAuto, links[1].Kind)
	require.Equal(t, "https://example.com/path", links[1].Destination)
}

func TestExtractLinks_ReferenceDefinition(t *testing.T) {
	links := ExtractLinks([]byte("See [Blog][b].\n\n[b]: /blog/\n"))
	require.Len(t, links, 2)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "/blog/", links[0].Destination)
	require.Equal(t, LinkKindReferenceDefinition, links[1].Kind)
}

func TestExtractLinks_SkipsCode(t *testing.T) {
	src := []byte("Inline: `[x](/ignored/)`\n\n```\n[y](/fenced/)\n```\n\nReal: [OK](/real/)\n")
	links := ExtractLinks(src)
	require.Len(t, links, 1)
	require.Equal(t, "/real/", links[0].Destination)
}

func TestEmptyLinks(t *testing.T) {
	src := []byte("- [Contact]()\n- [Home](/)\n- [Call](<>)\n")
	empty := EmptyLinks(src)
	require.Len(t, empty, 2)
	require.Equal(t, "Contact", empty[0].Text)
	require.Equal(t, "Call", empty[1].Text)
}
