package models

import "time"

// Post is a materialized blog document for one locale.
// ID always equals Slug; the slug is the unique identifier within a locale.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Author        Author    `json:"author"`
	PublishedAt   time.Time `json:"published"`
	Excerpt       string    `json:"excerpt"`
	Text          string    `json:"text"`
	FeaturedImage string    `json:"featured_image"`
	Categories    []string  `json:"categories"`
	Tags          []string  `json:"tags"`
	ReadTime      int       `json:"read_time"` // minutes
}

// Author is embedded in a post's frontmatter; it is never persisted on its own.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// NewAuthor derives the author ID from the name.
func NewAuthor(name, avatar, bio string) Author {
	return Author{
		ID:     Slugify(name),
		Name:   name,
		Avatar: avatar,
		Bio:    bio,
	}
}
