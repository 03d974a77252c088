package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	t.Run("frontmatter and body", func(t *testing.T) {
		meta, body, err := splitFrontmatter([]byte("---\ntitle: Hello\nslug: hello\n---\n\n# Heading\n\nBody text.\n"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", meta["title"])
		assert.Equal(t, "hello", meta["slug"])
		assert.Equal(t, "# Heading\n\nBody text.\n", body)
	})

	t.Run("no frontmatter block", func(t *testing.T) {
		meta, body, err := splitFrontmatter([]byte("just a body\n"))
		require.NoError(t, err)
		assert.Empty(t, meta)
		assert.Equal(t, "just a body\n", body)
	})

	t.Run("empty frontmatter block", func(t *testing.T) {
		meta, body, err := splitFrontmatter([]byte("---\n---\nbody\n"))
		require.NoError(t, err)
		assert.Empty(t, meta)
		assert.Equal(t, "body\n", body)
	})

	t.Run("unterminated block", func(t *testing.T) {
		_, _, err := splitFrontmatter([]byte("---\ntitle: Hello\n"))
		require.ErrorIs(t, err, errUnterminatedFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, _, err := splitFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
		require.Error(t, err)
	})

	t.Run("body keeps markdown horizontal rules", func(t *testing.T) {
		_, body, err := splitFrontmatter([]byte("---\ntitle: T\n---\nabove\n\n---\n\nbelow\n"))
		require.NoError(t, err)
		assert.Equal(t, "above\n\n---\n\nbelow\n", body)
	})
}
