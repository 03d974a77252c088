package app

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanlog/core/internal/middleware"
	"github.com/hanlog/core/internal/modules/content/category"
	"github.com/hanlog/core/internal/modules/content/post"
	"github.com/hanlog/core/internal/modules/syndication/feed"
	"github.com/hanlog/core/internal/modules/syndication/sitemap"
	"github.com/hanlog/core/internal/pkg/response"
)

var processStart = time.Now()

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "hanlog-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/hanlog/core",
	}

	api := r.Group("/api/v1")
	api.Use(middleware.HTTPCache(middleware.HTTPCacheOptions{
		TTL:     15 * time.Second,
		Disable: a.cfg.IsDev(),
		SkipPaths: []string{
			"/api/v1/health",
			"/api/v1/ping",
			"/api/v1/uptime",
		},
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})
	api.GET("/health", a.health)

	postSvc := post.NewService(a.store)
	post.NewHandler(postSvc).RegisterRoutes(api)
	category.NewHandler(category.NewService(a.store)).RegisterRoutes(api)

	// Feeds and sitemap live outside the versioned API prefix.
	root := r.Group("")
	feed.NewHandler(a.store, a.cfg.Site).RegisterRoutes(root)
	sitemap.NewHandler(a.store, a.cfg.Site).RegisterRoutes(root)
}

// health reports content directory reachability and per-locale post counts.
func (a *App) health(c *gin.Context) {
	info, err := os.Stat(a.store.Root())
	dirOK := err == nil && info.IsDir()

	counts := gin.H{}
	for _, locale := range a.store.Resolver().Locales() {
		posts, err := a.store.Posts(locale)
		if err != nil {
			continue
		}
		counts[locale] = len(posts)
	}

	status := "ok"
	code := http.StatusOK
	if !dirOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":      status,
		"content_dir": dirOK,
		"posts":       counts,
	})
}
