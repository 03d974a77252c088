package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hanlog/core/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, root string, opts Options) *Store {
	t.Helper()
	resolver, err := i18n.NewResolver([]string{"ko", "en"}, "ko")
	require.NoError(t, err)
	s := NewStore(root, resolver, zap.NewNop(), opts)
	t.Cleanup(s.Close)
	return s
}

func writeDoc(t *testing.T, root, name, doc string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

const helloKo = `---
title: 안녕하세요
slug: hello
publishedDate: "2024-01-15"
categories:
  - Development
tags:
  - Go
---
본문입니다.
`

const helloEn = `---
title: Hello
slug: hello
publishedDate: "2024-01-15"
categories:
  - Development
tags:
  - Go
---
Body text.
`

func TestStoreLocaleSeparation(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "hello.mdx", helloKo)
	writeDoc(t, root, "hello.en.mdx", helloEn)

	store := newTestStore(t, root, Options{})

	ko, err := store.Posts("ko")
	require.NoError(t, err)
	require.Len(t, ko, 1)
	assert.Equal(t, "안녕하세요", ko[0].Title)

	en, err := store.Posts("en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "Hello", en[0].Title)

	// Blank locale falls back to the default.
	def, err := store.Posts("")
	require.NoError(t, err)
	require.Len(t, def, 1)
	assert.Equal(t, "안녕하세요", def[0].Title)
}

func TestStoreUnsupportedLocale(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root, Options{})

	_, err := store.Posts("fr")
	require.ErrorIs(t, err, i18n.ErrUnsupportedLocale)
}

func TestStoreMissingRootIsEmpty(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "does-not-exist"), Options{})

	posts, err := store.Posts("ko")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestStoreSkipsInvalidDocuments(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "good.mdx", helloKo)
	writeDoc(t, root, "no-title.mdx", "---\nslug: no-title\npublishedDate: \"2024-01-01\"\n---\nbody\n")
	writeDoc(t, root, "broken.mdx", "---\ntitle: [unclosed\n---\nbody\n")
	writeDoc(t, root, "unterminated.mdx", "---\ntitle: nope\n")

	store := newTestStore(t, root, Options{})

	posts, err := store.Posts("ko")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Slug)
}

func TestStoreSortsByPublishedDateDescending(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "old.mdx", "---\ntitle: Old\nslug: old\npublishedDate: \"2023-06-01\"\n---\nbody\n")
	writeDoc(t, root, "new.mdx", "---\ntitle: New\nslug: new\npublishedDate: \"2024-06-01\"\n---\nbody\n")
	writeDoc(t, root, "mid.mdx", "---\ntitle: Mid\nslug: mid\npublishedDate: \"2023-12-01\"\n---\nbody\n")

	store := newTestStore(t, root, Options{})

	posts, err := store.Posts("ko")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{posts[0].Slug, posts[1].Slug, posts[2].Slug})
}

func TestStoreScansNestedDirectories(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "top.mdx", helloKo)
	writeDoc(t, root, filepath.Join("2024", "nested.mdx"),
		"---\ntitle: Nested\nslug: nested\npublishedDate: \"2024-02-01\"\n---\nbody\n")

	store := newTestStore(t, root, Options{})

	posts, err := store.Posts("ko")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestStoreCacheReflectsDiskChanges(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "hello.mdx", helloKo)

	store := newTestStore(t, root, Options{CacheEnabled: true})

	posts, err := store.Posts("ko")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	// Unchanged directory serves the snapshot.
	again, err := store.Posts("ko")
	require.NoError(t, err)
	assert.Equal(t, posts, again)

	// A new file changes the fingerprint and invalidates the snapshot.
	writeDoc(t, root, "second.mdx", "---\ntitle: Second\nslug: second\npublishedDate: \"2025-01-01\"\n---\nbody\n")

	after, err := store.Posts("ko")
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "second", after[0].Slug)

	// Deleting it is reflected too.
	require.NoError(t, os.Remove(filepath.Join(root, "second.mdx")))
	final, err := store.Posts("ko")
	require.NoError(t, err)
	assert.Len(t, final, 1)
}

func TestStoreDocuments(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "hello.mdx", helloKo)
	writeDoc(t, root, "plain.mdx", "no frontmatter at all\n")

	store := newTestStore(t, root, Options{})

	docs, err := store.Documents("ko")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Sorted path order.
	assert.Equal(t, "hello.mdx", docs[0].Path)
	assert.Equal(t, "안녕하세요", docs[0].Meta["title"])
	assert.Equal(t, "본문입니다.\n", docs[0].Body)

	assert.Equal(t, "plain.mdx", docs[1].Path)
	assert.Empty(t, docs[1].Meta)
}
