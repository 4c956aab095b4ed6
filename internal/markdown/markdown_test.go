package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGFM(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("# Title\n\n- one\n- two\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<h1 id="title">Title</h1>`)
	assert.Contains(t, html, "<li>one</li>")
	assert.Contains(t, html, "<table>")
}

func TestRenderKeepsCodeLanguage(t *testing.T) {
	out, err := NewRenderer().Render("```go\nfmt.Println(1)\n```\n")
	require.NoError(t, err)
	assert.Contains(t, string(out), `class="language-go"`)
}

func TestRenderSanitizes(t *testing.T) {
	out, err := NewRenderer().Render("hello <script>alert(1)</script>\n\n[x](javascript:alert(1))\n")
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "javascript:")
}

func TestRenderLinksAreNofollow(t *testing.T) {
	out, err := NewRenderer().Render("[site](https://example.com)\n")
	require.NoError(t, err)
	assert.Contains(t, string(out), "nofollow")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Write your content here...", Excerpt("# New Post\r\n\r\nWrite your content here..."))
	assert.Equal(t, "", Excerpt("# Only\n## Headings\n"))

	long := strings.Repeat("é", MaxExcerpt+20)
	assert.Equal(t, MaxExcerpt, len([]rune(Excerpt(long))))
}
