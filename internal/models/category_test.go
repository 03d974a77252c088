package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "development", Slugify("Development"))
	assert.Equal(t, "web-development", Slugify("Web Development"))
	assert.Equal(t, "web-development", Slugify("  Web   Development  "))
	assert.Equal(t, "", Slugify("   "))
}

func TestNewCategory(t *testing.T) {
	c := NewCategory("Web Development", "Web development articles and resources")
	assert.Equal(t, "web-development", c.ID)
	assert.Equal(t, "web-development", c.Slug)
	assert.Equal(t, "Web Development", c.Name)
	assert.Equal(t, "Web development articles and resources", c.Description)
}

func TestNewAuthor(t *testing.T) {
	a := NewAuthor("Jane Doe", "/img/jane.png", "bio")
	assert.Equal(t, "jane-doe", a.ID)
	assert.Equal(t, "Jane Doe", a.Name)
}
