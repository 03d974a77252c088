package sitemap

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanlog/core/internal/config"
	"github.com/hanlog/core/internal/content"
)

// Handler serves a sitemap covering every locale of the content store.
type Handler struct {
	store *content.Store
	site  config.SiteConfig
}

func NewHandler(store *content.Store, site config.SiteConfig) *Handler {
	return &Handler{store: store, site: site}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	render := func(c *gin.Context) {
		xml, err := h.build()
		if err != nil {
			c.String(500, "error generating sitemap")
			return
		}
		c.Header("Content-Type", "application/xml; charset=utf-8")
		c.String(200, xml)
	}
	rg.GET("/sitemap.xml", render)
	rg.GET("/sitemap", render)
}

type sitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

func (h *Handler) build() (string, error) {
	base := h.site.URL

	var urls []sitemapURL
	urls = append(urls, sitemapURL{
		Loc: base, LastMod: time.Now(),
		ChangeFreq: "daily", Priority: 1.0,
	})

	for _, locale := range h.store.Resolver().Locales() {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/%s/blog", base, locale),
			LastMod:    time.Now(),
			ChangeFreq: "daily",
			Priority:   0.9,
		})

		posts, err := h.store.Posts(locale)
		if err != nil {
			return "", err
		}
		for _, p := range posts {
			urls = append(urls, sitemapURL{
				Loc:        fmt.Sprintf("%s/%s/blog/%s", base, locale, p.Slug),
				LastMod:    p.PublishedAt,
				ChangeFreq: "weekly",
				Priority:   0.8,
			})
		}
	}

	return renderXML(urls), nil
}

func renderXML(urls []sitemapURL) string {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`
	for _, u := range urls {
		xml += fmt.Sprintf(`  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, escapeXML(u.Loc), u.LastMod.Format("2006-01-02"), u.ChangeFreq, u.Priority)
	}
	xml += `</urlset>`
	return xml
}

func escapeXML(s string) string {
	out := ""
	for _, r := range s {
		switch r {
		case '&':
			out += "&amp;"
		case '<':
			out += "&lt;"
		case '>':
			out += "&gt;"
		default:
			out += string(r)
		}
	}
	return out
}
