package post

import (
	"strings"

	"github.com/hanlog/core/internal/content"
	"github.com/hanlog/core/internal/models"
)

// Service answers read queries over the locale's post set. All queries
// preserve the store's ordering (published date descending).
type Service struct {
	store *content.Store
}

func NewService(store *content.Store) *Service {
	return &Service{store: store}
}

// ListAll returns every post for the locale.
func (s *Service) ListAll(locale string) ([]models.Post, error) {
	return s.store.Posts(locale)
}

// GetBySlug returns the post with the given slug, or nil when no post
// matches. With duplicate slugs the first post in scan order wins.
func (s *Service) GetBySlug(locale, slug string) (*models.Post, error) {
	posts, err := s.store.Posts(locale)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// ListByCategory returns the posts whose categories contain the given name,
// compared case-insensitively.
func (s *Service) ListByCategory(locale, category string) ([]models.Post, error) {
	return s.filter(locale, func(p models.Post) bool {
		return containsFold(p.Categories, category)
	})
}

// ListByTag returns the posts whose tags contain the given name, compared
// case-insensitively.
func (s *Service) ListByTag(locale, tag string) ([]models.Post, error) {
	return s.filter(locale, func(p models.Post) bool {
		return containsFold(p.Tags, tag)
	})
}

func (s *Service) filter(locale string, keep func(models.Post) bool) ([]models.Post, error) {
	posts, err := s.store.Posts(locale)
	if err != nil {
		return nil, err
	}
	out := []models.Post{}
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
