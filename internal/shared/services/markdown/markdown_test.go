package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("Steps:\n\n- open **Firefox**\n- visit `/login`")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Firefox</strong>")
	assert.Contains(t, out, "<code>/login</code>")
	assert.Contains(t, out, "<li>")
}

func TestRender_StripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("hello <script>alert(1)</script> <a href=\"javascript:alert(1)\">x</a>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "javascript:")
}

func TestRender_LinksAreNoFollow(t *testing.T) {
	out, err := NewRenderer().Render("see https://example.com/docs")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://example.com/docs"`)
	assert.Contains(t, out, "nofollow")
}

func TestExcerpt(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, "Users report a broken login", r.Excerpt("Users report a **broken**\n\nlogin", 0))
	assert.Equal(t, "Users…", r.Excerpt("Users report a broken login", 5))
	assert.Equal(t, "a < b", r.Excerpt("a < b", 20))
}
