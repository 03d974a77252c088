package content

import (
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/hanlog/core/internal/models"
)

// snapshotCache keeps one materialized snapshot per locale, keyed by a
// directory fingerprint. A snapshot is only served while the fingerprint
// still matches the on-disk state, so cached reads keep the "always reflects
// current content" contract at the cost of a stat pass.
type snapshotCache struct {
	mu       sync.RWMutex
	byLocale map[string]snapshot
}

type snapshot struct {
	fp    uint64
	posts []models.Post
}

func newSnapshotCache() *snapshotCache {
	return &snapshotCache{byLocale: make(map[string]snapshot)}
}

func (c *snapshotCache) get(locale string, fp uint64) ([]models.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.byLocale[locale]
	if !ok || snap.fp != fp {
		return nil, false
	}
	out := make([]models.Post, len(snap.posts))
	copy(out, snap.posts)
	return out, true
}

func (c *snapshotCache) put(locale string, fp uint64, posts []models.Post) {
	stored := make([]models.Post, len(posts))
	copy(stored, posts)
	c.mu.Lock()
	c.byLocale[locale] = snapshot{fp: fp, posts: stored}
	c.mu.Unlock()
}

// purge drops every locale's snapshot.
func (c *snapshotCache) purge() {
	c.mu.Lock()
	c.byLocale = make(map[string]snapshot)
	c.mu.Unlock()
}

// fingerprint folds every file's path, size and mtime into one value.
// Any create, delete, rename or edit under the root changes it.
func fingerprint(files []fileEntry) uint64 {
	h := fnv.New64a()
	for _, f := range files {
		h.Write([]byte(f.path))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatInt(f.size, 10)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatInt(f.mtime, 10)))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
