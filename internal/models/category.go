package models

import "strings"

// Category is a derived aggregate: the set of categories is the union of all
// posts' category names, never authored directly.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// NewCategory wraps a raw category name with its derived id/slug/description.
func NewCategory(name, description string) Category {
	slug := Slugify(name)
	return Category{
		ID:          slug,
		Name:        name,
		Slug:        slug,
		Description: description,
	}
}

// Slugify converts a display name to a URL-friendly identifier: lower-cased,
// whitespace collapsed to single hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
