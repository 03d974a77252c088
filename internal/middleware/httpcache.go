package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultHTTPCacheTTL     = 15 * time.Second
	defaultHTTPCacheMaxBody = 1 << 20 // 1 MiB
)

// HTTPCacheOptions tunes the in-process GET response cache. Content is local
// to this process, so the response cache is too.
type HTTPCacheOptions struct {
	TTL          time.Duration
	Disable      bool
	SkipPaths    []string
	MaxBodyBytes int
}

type cachedHTTPResponse struct {
	status      int
	contentType string
	body        []byte
	expiresAt   time.Time
}

type httpCacheStore struct {
	mu      sync.RWMutex
	entries map[string]cachedHTTPResponse
}

func (s *httpCacheStore) get(key string, now time.Time) (cachedHTTPResponse, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return cachedHTTPResponse{}, false
	}
	if now.After(entry.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && now.After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return cachedHTTPResponse{}, false
	}
	return entry, true
}

// put inserts the entry and sweeps out every expired one, so entries that
// are never requested again (the key is the request URI, which callers
// control) cannot accumulate past their TTL.
func (s *httpCacheStore) put(key string, entry cachedHTTPResponse, now time.Time) {
	s.mu.Lock()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[key] = entry
	s.mu.Unlock()
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body         []byte
	maxBodyBytes int
	overflow     bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheBodyWriter) capture(data []byte) {
	if w.maxBodyBytes <= 0 || w.overflow || len(data) == 0 {
		return
	}
	remaining := w.maxBodyBytes - len(w.body)
	if remaining <= 0 {
		w.overflow = true
		return
	}
	if len(data) > remaining {
		w.overflow = true
		return
	}
	w.body = append(w.body, data...)
}

// HTTPCache caches successful GET responses in memory for a short TTL and
// sets Cache-Control accordingly.
func HTTPCache(opts HTTPCacheOptions) gin.HandlerFunc {
	if opts.TTL <= 0 {
		opts.TTL = defaultHTTPCacheTTL
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultHTTPCacheMaxBody
	}
	store := &httpCacheStore{entries: make(map[string]cachedHTTPResponse)}

	return func(c *gin.Context) {
		if opts.Disable || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		if shouldSkipCachePath(c.Request.URL.Path, opts.SkipPaths) {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		now := time.Now()
		if entry, ok := store.get(key, now); ok {
			setCacheControl(c, opts.TTL)
			c.Data(entry.status, entry.contentType, entry.body)
			c.Abort()
			return
		}

		buffer := &cacheBodyWriter{
			ResponseWriter: c.Writer,
			maxBodyBytes:   opts.MaxBodyBytes,
		}
		c.Writer = buffer
		setCacheControl(c, opts.TTL)
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || buffer.overflow || len(buffer.body) == 0 {
			return
		}
		store.put(key, cachedHTTPResponse{
			status:      status,
			contentType: c.Writer.Header().Get("Content-Type"),
			body:        buffer.body,
			expiresAt:   now.Add(opts.TTL),
		}, now)
	}
}

func setCacheControl(c *gin.Context, ttl time.Duration) {
	c.Header("Cache-Control", "public, max-age="+strconv.Itoa(int(ttl/time.Second)))
}

func shouldSkipCachePath(path string, skip []string) bool {
	for _, p := range skip {
		if strings.HasSuffix(p, "/*") {
			if strings.HasPrefix(path, strings.TrimSuffix(p, "*")) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}
