package category

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hanlog/core/internal/i18n"
	"github.com/hanlog/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.listCategories)
	rg.GET("/tags", h.listTags)
}

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.svc.ListCategories(c.Query("locale"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, cats)
}

func (h *Handler) listTags(c *gin.Context) {
	tags, err := h.svc.ListTags(c.Query("locale"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, tags)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, i18n.ErrUnsupportedLocale) {
		response.BadRequest(c, err.Error())
		return
	}
	response.InternalError(c, err)
}
