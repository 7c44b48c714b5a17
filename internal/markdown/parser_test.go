package markdown_test

import (
	"testing"

	"github.com/kristofferme/leader/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	p := markdown.NewParser()

	html, err := p.RenderString("Team is **tired** after launch")
	require.NoError(t, err)
	assert.Equal(t, "<p>Team is <strong>tired</strong> after launch</p>", html)

	html, err = p.RenderString("")
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestRenderStringDropsRawHTML(t *testing.T) {
	p := markdown.NewParser()

	html, err := p.RenderString(`<script>alert("x")</script>`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestDecodeFrontmatter(t *testing.T) {
	p := markdown.NewParser()

	source := []byte("---\ntitle: Prompts\nprompts:\n  - one\n  - two\n---\n\nBody text.\n")

	var meta struct {
		Title   string   `yaml:"title"`
		Prompts []string `yaml:"prompts"`
	}
	found, err := p.DecodeFrontmatter(source, &meta)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Prompts", meta.Title)
	assert.Equal(t, []string{"one", "two"}, meta.Prompts)

	found, err = p.DecodeFrontmatter([]byte("no frontmatter"), &meta)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestParseWithFrontmatter(t *testing.T) {
	p := markdown.NewParser()

	content, meta, err := p.ParseWithFrontmatter([]byte("---\ntitle: Hello\n---\n\nBody\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", meta["title"])
	assert.Contains(t, string(content), "<p>Body</p>")
}
