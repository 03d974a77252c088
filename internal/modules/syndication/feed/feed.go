package feed

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanlog/core/internal/config"
	"github.com/hanlog/core/internal/content"
	"github.com/hanlog/core/internal/i18n"
	"github.com/hanlog/core/internal/pkg/response"
)

// maxItems caps how many recent posts a feed carries.
const maxItems = 20

// Handler serves RSS and Atom feeds built from the content store.
type Handler struct {
	store *content.Store
	site  config.SiteConfig
}

func NewHandler(store *content.Store, site config.SiteConfig) *Handler {
	return &Handler{store: store, site: site}
}

// RegisterRoutes mounts RSS and Atom feed endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", func(c *gin.Context) {
		h.render(c, c.DefaultQuery("type", "rss")) // rss | atom
	})
	rg.GET("/feed.xml", func(c *gin.Context) {
		h.render(c, "rss")
	})
	rg.GET("/atom.xml", func(c *gin.Context) {
		h.render(c, "atom")
	})
}

type feedItem struct {
	Title   string
	Link    string
	GUID    string
	PubDate time.Time
	Content string
}

func (h *Handler) render(c *gin.Context, feedType string) {
	locale := c.DefaultQuery("locale", h.store.Resolver().Default())
	posts, err := h.store.Posts(locale)
	if err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLocale) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	if len(posts) > maxItems {
		posts = posts[:maxItems]
	}

	items := make([]feedItem, len(posts))
	for i, p := range posts {
		link := postURL(h.site.URL, locale, p.Slug)
		items[i] = feedItem{
			Title:   p.Title,
			Link:    link,
			GUID:    link,
			PubDate: p.PublishedAt,
			Content: p.Text,
		}
	}

	switch feedType {
	case "atom":
		c.Header("Content-Type", "application/atom+xml; charset=utf-8")
		c.String(200, buildAtom(h.site.Title, h.site.Description, h.site.URL, items))
	default:
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(200, buildRSS(h.site.Title, h.site.Description, h.site.URL, items))
	}
}

func postURL(base, locale, slug string) string {
	return fmt.Sprintf("%s/%s/blog/%s", base, locale, slug)
}

func buildRSS(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC1123Z)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <lastBuildDate>%s</lastBuildDate>
`, escapeXML(title), escapeXML(link), escapeXML(desc), now)

	for _, item := range items {
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <guid>%s</guid>
      <pubDate>%s</pubDate>
      <description><![CDATA[%s]]></description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), escapeXML(item.GUID),
			item.PubDate.Format(time.RFC1123Z), item.Content)
	}

	xml += `  </channel>
</rss>`
	return xml
}

func buildAtom(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC3339)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <updated>%s</updated>
  <id>%s</id>
`, escapeXML(title), escapeXML(desc), escapeXML(link), now, escapeXML(link))

	for _, item := range items {
		xml += fmt.Sprintf(`  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <content type="html"><![CDATA[%s]]></content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), escapeXML(item.GUID),
			item.PubDate.Format(time.RFC3339), item.Content)
	}

	xml += `</feed>`
	return xml
}

// escapeXML replaces XML special characters in attribute/element content.
func escapeXML(s string) string {
	result := ""
	for _, r := range s {
		switch r {
		case '&':
			result += "&amp;"
		case '<':
			result += "&lt;"
		case '>':
			result += "&gt;"
		case '"':
			result += "&quot;"
		default:
			result += string(r)
		}
	}
	return result
}
