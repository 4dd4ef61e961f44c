package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Book Sources

Subscribe with one of the feeds below.

- [Curated feed](https://example.com/curated.json)
- [Full feed](https://example.com/all.json "all sources")
- Mirror: <https://mirror.example.org/all.json>
- Bare link https://cdn.example.net/raw.json works too.
- [Curated again](https://example.com/curated.json)

See the ` + "`merge`" + ` script: [**merge** ` + "`docs`" + `](https://example.com/docs/merge)
`

func TestParse_Targets(t *testing.T) {
	p := Parse([]byte(sample))

	assert.Equal(t, "Book Sources", p.Title())
	assert.Equal(t, []Target{
		{Label: "Curated feed", Payload: "https://example.com/curated.json"},
		{Label: "Full feed", Payload: "https://example.com/all.json"},
		{Label: "https://mirror.example.org/all.json", Payload: "https://mirror.example.org/all.json"},
		{Label: "https://cdn.example.net/raw.json", Payload: "https://cdn.example.net/raw.json"},
		{Label: "merge docs", Payload: "https://example.com/docs/merge"},
	}, p.Targets())
}

func TestParse_NoLinks(t *testing.T) {
	p := Parse([]byte("just some text\n"))
	assert.Empty(t, p.Targets())
	assert.Equal(t, "", p.Title())
	assert.False(t, p.Empty())
}

func TestParse_EmptyLinkLabelFallsBackToURL(t *testing.T) {
	p := Parse([]byte("[](https://example.com/x)\n"))
	require.Len(t, p.Targets(), 1)
	assert.Equal(t, "https://example.com/x", p.Targets()[0].Label)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.md")
	require.NoError(t, os.WriteFile(path, []byte("No heading, [one](https://example.com/1)\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sources", p.Title(), "title falls back to file name")
	assert.Equal(t, path, p.Path)
	assert.Len(t, p.Targets(), 1)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender(t *testing.T) {
	p := Parse([]byte(sample))
	p.SetStyle("notty")

	out := p.Render(60)
	assert.Contains(t, out, "Book Sources")
	assert.Contains(t, out, "Curated feed")

	// cached per width
	assert.Equal(t, out, p.Render(60))
}

func TestRender_Empty(t *testing.T) {
	p := Parse(nil)
	assert.True(t, p.Empty())
	assert.Equal(t, "", p.Render(80))
}
