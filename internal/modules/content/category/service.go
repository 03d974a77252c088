package category

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hanlog/core/internal/content"
	"github.com/hanlog/core/internal/models"
)

// descriptions maps well-known category names (lower-cased) to blurbs shown
// on the category index.
var descriptions = map[string]string{
	"development":     "Software development tutorials and best practices",
	"react":           "React framework guides and patterns",
	"typescript":      "TypeScript tips, tricks, and advanced features",
	"nextjs":          "Next.js tutorials and application development",
	"javascript":      "JavaScript fundamentals and modern features",
	"css":             "CSS styling techniques and best practices",
	"tutorial":        "Step-by-step tutorials and guides",
	"web development": "Web development articles and resources",
	"design":          "Design principles and UI/UX best practices",
	"performance":     "Web performance optimization techniques",
	"testing":         "Testing strategies and tools",
	"devops":          "DevOps practices and deployment strategies",
}

// Service derives taxonomy aggregates from the post set. Categories and tags
// are never authored directly; both are unions over the locale's posts.
type Service struct {
	store *content.Store
}

func NewService(store *content.Store) *Service {
	return &Service{store: store}
}

// ListCategories returns the deduplicated union of all posts' categories for
// the locale, lexicographically sorted by name and wrapped with derived
// id/slug/description.
func (s *Service) ListCategories(locale string) ([]models.Category, error) {
	names, err := s.collect(locale, func(p models.Post) []string { return p.Categories })
	if err != nil {
		return nil, err
	}
	cats := make([]models.Category, 0, len(names))
	for _, name := range names {
		cats = append(cats, models.NewCategory(name, describe(name)))
	}
	return cats, nil
}

// ListTags returns the deduplicated, sorted union of all posts' tags for the
// locale as plain strings.
func (s *Service) ListTags(locale string) ([]string, error) {
	return s.collect(locale, func(p models.Post) []string { return p.Tags })
}

func (s *Service) collect(locale string, pick func(models.Post) []string) ([]string, error) {
	posts, err := s.store.Posts(locale)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	names := []string{}
	for _, p := range posts {
		for _, name := range pick(p) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func describe(name string) string {
	if d, ok := descriptions[strings.ToLower(name)]; ok {
		return d
	}
	return fmt.Sprintf("Articles about %s", name)
}
