package post

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hanlog/core/internal/i18n"
	"github.com/hanlog/core/internal/models"
	"github.com/hanlog/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.GET("/:slug", h.getBySlug)
}

// GET /posts?locale=&category=&tag=
func (h *Handler) list(c *gin.Context) {
	locale := c.Query("locale")

	var (
		posts []models.Post
		err   error
	)
	switch {
	case c.Query("category") != "":
		posts, err = h.svc.ListByCategory(locale, c.Query("category"))
	case c.Query("tag") != "":
		posts, err = h.svc.ListByTag(locale, c.Query("tag"))
	default:
		posts, err = h.svc.ListAll(locale)
	}
	if err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLocale) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// GET /posts/:slug?locale=
func (h *Handler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Query("locale"), c.Param("slug"))
	if err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLocale) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}
