// Package content materializes per-locale MDX documents from a content
// directory into domain records.
//
// The directory is the source of truth and is only ever mutated by an
// external author or editor; this package has no write path. Failure policy
// is fail-open: a missing directory yields an empty set, and a file that
// cannot be read, parsed or validated is skipped with a diagnostic while the
// rest of the scan continues.
package content

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hanlog/core/internal/i18n"
	"github.com/hanlog/core/internal/models"
	"go.uber.org/zap"
)

// globPattern selects content files anywhere under the root, nested
// directories included.
const globPattern = "**/*" + i18n.Ext

// Options tunes the store's snapshot cache.
type Options struct {
	// CacheEnabled keeps a per-locale snapshot, revalidated against a cheap
	// directory fingerprint on every call. Disabled, every call re-reads and
	// re-parses the full directory.
	CacheEnabled bool
	// Watch additionally invalidates the cache from filesystem events.
	Watch bool
}

// Store reads and materializes content documents. It is an explicit,
// constructible component: tests point it at a fixture directory.
type Store struct {
	root     string
	resolver *i18n.Resolver
	log      *zap.Logger
	cache    *snapshotCache
	watcher  *watcher
}

// NewStore creates a store over the given content root.
func NewStore(root string, resolver *i18n.Resolver, logger *zap.Logger, opts Options) *Store {
	s := &Store{
		root:     root,
		resolver: resolver,
		log:      logger,
	}
	if opts.CacheEnabled {
		s.cache = newSnapshotCache()
	}
	if opts.CacheEnabled && opts.Watch {
		w, err := newWatcher(root, s.cache, logger)
		if err != nil {
			logger.Warn("content watcher unavailable, relying on fingerprint revalidation", zap.Error(err))
		} else {
			s.watcher = w
		}
	}
	return s
}

// Close stops the filesystem watcher, if any.
func (s *Store) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
}

// Root returns the content root directory.
func (s *Store) Root() string { return s.root }

// Resolver returns the locale resolver the store scans with.
func (s *Store) Resolver() *i18n.Resolver { return s.resolver }

// Posts returns the materialized posts for a locale, sorted by published
// date descending. Ties keep scan order, which is deterministic because the
// scan visits files in sorted path order. The only error is an unsupported
// locale; every on-disk failure degrades to "skip" or "empty".
func (s *Store) Posts(locale string) ([]models.Post, error) {
	code := s.resolver.Normalize(locale)
	if err := s.resolver.Validate(code); err != nil {
		return nil, err
	}

	files := s.listFiles()
	if s.cache == nil {
		return s.materialize(code, files), nil
	}

	fp := fingerprint(files)
	if posts, ok := s.cache.get(code, fp); ok {
		return posts, nil
	}
	posts := s.materialize(code, files)
	s.cache.put(code, fp, posts)
	return posts, nil
}

// Documents returns the raw parsed documents for a locale, before
// frontmatter validation. Unparseable files are skipped.
func (s *Store) Documents(locale string) ([]Document, error) {
	code := s.resolver.Normalize(locale)
	if err := s.resolver.Validate(code); err != nil {
		return nil, err
	}

	docs := []Document{}
	for _, f := range s.listFiles() {
		if !s.resolver.Matches(filepath.Base(f.path), code) {
			continue
		}
		doc, ok := s.readDocument(f.path)
		if !ok {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

type fileEntry struct {
	path  string // relative to root
	size  int64
	mtime int64
}

// listFiles stats every content file under the root in sorted path order.
// An absent or unreadable root is not an error: the result is empty.
func (s *Store) listFiles() []fileEntry {
	if info, err := os.Stat(s.root); err != nil || !info.IsDir() {
		s.log.Warn("content root not readable, serving empty set", zap.String("dir", s.root))
		return nil
	}

	matches, err := doublestar.Glob(os.DirFS(s.root), globPattern)
	if err != nil {
		s.log.Warn("content scan failed, serving empty set", zap.String("dir", s.root), zap.Error(err))
		return nil
	}
	sort.Strings(matches)

	entries := make([]fileEntry, 0, len(matches))
	for _, rel := range matches {
		info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(rel)))
		if err != nil || info.IsDir() {
			continue
		}
		entries = append(entries, fileEntry{path: rel, size: info.Size(), mtime: info.ModTime().UnixNano()})
	}
	return entries
}

// materialize parses, validates and sorts the locale's documents.
func (s *Store) materialize(locale string, files []fileEntry) []models.Post {
	posts := []models.Post{}
	for _, f := range files {
		if !s.resolver.Matches(filepath.Base(f.path), locale) {
			continue
		}
		doc, ok := s.readDocument(f.path)
		if !ok {
			continue
		}
		fm, err := validateFrontmatter(doc.Meta, doc.Body)
		if err != nil {
			s.log.Warn("document rejected", zap.String("file", f.path), zap.Error(err))
			continue
		}
		posts = append(posts, models.Post{
			ID:            fm.Slug,
			Title:         fm.Title,
			Slug:          fm.Slug,
			Author:        fm.Author,
			PublishedAt:   fm.PublishedAt,
			Excerpt:       fm.Excerpt,
			Text:          doc.Body,
			FeaturedImage: fm.FeaturedImage,
			Categories:    fm.Categories,
			Tags:          fm.Tags,
			ReadTime:      fm.ReadTime,
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}

func (s *Store) readDocument(rel string) (Document, bool) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		s.log.Warn("document unreadable, skipped", zap.String("file", rel), zap.Error(err))
		return Document{}, false
	}
	meta, body, err := splitFrontmatter(data)
	if err != nil {
		s.log.Warn("document unparseable, skipped", zap.String("file", rel), zap.Error(err))
		return Document{}, false
	}
	return Document{Path: rel, Meta: meta, Body: body}, true
}
