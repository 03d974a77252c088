package content

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hanlog/core/internal/models"
)

// wordsPerMinute is the reading speed used to derive a read time when the
// frontmatter does not supply one.
const wordsPerMinute = 200

// Frontmatter is the validated, defaulted metadata of a content document.
type Frontmatter struct {
	Title         string
	Slug          string
	PublishedAt   time.Time
	Excerpt       string
	FeaturedImage string
	Categories    []string
	Tags          []string
	ReadTime      int
	Author        models.Author
}

// ValidationError rejects a document, naming the offending fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid frontmatter: " + strings.Join(e.Fields, ", ")
}

var publishedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// validateFrontmatter checks required fields, applies optional-field defaults
// and derives the read time from the body when absent.
func validateFrontmatter(meta map[string]any, body string) (*Frontmatter, error) {
	var bad []string

	fm := &Frontmatter{
		Title: metaString(meta, "title"),
		Slug:  metaString(meta, "slug"),
	}
	if fm.Title == "" {
		bad = append(bad, "title")
	}
	if fm.Slug == "" {
		bad = append(bad, "slug")
	}

	// yaml.v3 decodes unquoted ISO dates straight to time.Time; quoted ones
	// stay strings.
	switch v := meta["publishedDate"].(type) {
	case time.Time:
		fm.PublishedAt = v
	case string:
		t, err := parsePublishedDate(strings.TrimSpace(v))
		if err != nil {
			bad = append(bad, fmt.Sprintf("publishedDate (%v)", err))
		} else {
			fm.PublishedAt = t
		}
	default:
		bad = append(bad, "publishedDate")
	}

	fm.Excerpt = metaString(meta, "excerpt")
	fm.FeaturedImage = metaString(meta, "featuredImage")
	fm.Categories = metaStringList(meta, "categories")
	fm.Tags = metaStringList(meta, "tags")

	fm.ReadTime = metaInt(meta, "readTime")
	if fm.ReadTime <= 0 {
		fm.ReadTime = CalculateReadTime(body)
	}

	if author, ok := meta["author"].(map[string]any); ok {
		name := metaString(author, "name")
		if name == "" {
			bad = append(bad, "author.name")
		} else {
			fm.Author = models.NewAuthor(name, metaString(author, "avatar"), metaString(author, "bio"))
		}
	}

	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}
	return fm, nil
}

func parsePublishedDate(raw string) (time.Time, error) {
	for _, layout := range publishedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// CalculateReadTime estimates reading minutes from the body word count at
// 200 words per minute, rounded up, never less than 1.
func CalculateReadTime(body string) int {
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func metaStringList(meta map[string]any, key string) []string {
	out := []string{}
	switch v := meta[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	case []string:
		for _, s := range v {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func metaInt(meta map[string]any, key string) int {
	switch v := meta[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
