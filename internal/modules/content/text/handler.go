package text

import (
	"strings"

	"github.com/aurelia-studio/site-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	texts := rg.Group("/texts")
	texts.GET("", h.list)

	admin := rg.Group("/admin/texts", authMW)
	admin.PUT("", h.saveAll)
	admin.PATCH("/:id", h.save)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.ListMerged())
}

func (h *Handler) saveAll(c *gin.Context) {
	var dto []SaveTextDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entries, err := h.svc.SaveAll(dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, entries)
}

func (h *Handler) save(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "text id is required")
		return
	}
	var dto UpdateTextDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.Save(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, row)
}
