package category

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hanlog/core/internal/content"
	"github.com/hanlog/core/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedStore(t *testing.T, docs ...string) *content.Store {
	t.Helper()
	root := t.TempDir()
	for i, doc := range docs {
		name := fmt.Sprintf("post-%d.mdx", i)
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(doc), 0o644))
	}
	resolver, err := i18n.NewResolver([]string{"ko", "en"}, "ko")
	require.NoError(t, err)
	store := content.NewStore(root, resolver, zap.NewNop(), content.Options{})
	t.Cleanup(store.Close)
	return store
}

func TestListCategories(t *testing.T) {
	svc := NewService(seedStore(t,
		"---\ntitle: A\nslug: a\npublishedDate: \"2024-03-01\"\ncategories: [React, Development]\n---\nbody\n",
		"---\ntitle: B\nslug: b\npublishedDate: \"2024-02-01\"\ncategories: [Development, Quantum Baking]\n---\nbody\n",
	))

	cats, err := svc.ListCategories("ko")
	require.NoError(t, err)
	require.Len(t, cats, 3)

	// Sorted by name, deduplicated across posts.
	assert.Equal(t, "Development", cats[0].Name)
	assert.Equal(t, "Quantum Baking", cats[1].Name)
	assert.Equal(t, "React", cats[2].Name)

	assert.Equal(t, "development", cats[0].Slug)
	assert.Equal(t, "quantum-baking", cats[1].Slug)

	// Known names get the curated blurb, unknown ones the fallback.
	assert.Equal(t, "Software development tutorials and best practices", cats[0].Description)
	assert.Equal(t, "Articles about Quantum Baking", cats[1].Description)
}

func TestListCategoriesEmptyStore(t *testing.T) {
	svc := NewService(seedStore(t))

	cats, err := svc.ListCategories("ko")
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestListTags(t *testing.T) {
	svc := NewService(seedStore(t,
		"---\ntitle: A\nslug: a\npublishedDate: \"2024-03-01\"\ntags: [go, web]\n---\nbody\n",
		"---\ntitle: B\nslug: b\npublishedDate: \"2024-02-01\"\ntags: [web, testing]\n---\nbody\n",
	))

	tags, err := svc.ListTags("ko")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "testing", "web"}, tags)
}

func TestListTagsUnsupportedLocale(t *testing.T) {
	svc := NewService(seedStore(t))

	_, err := svc.ListTags("fr")
	require.ErrorIs(t, err, i18n.ErrUnsupportedLocale)
}
