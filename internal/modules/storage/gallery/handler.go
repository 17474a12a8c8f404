package gallery

import (
	"errors"

	"github.com/aurelia-studio/site-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Uploads are capped well below gin's default multipart memory.
const maxUploadBytes = 10 << 20 // 10 MiB

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	admin := rg.Group("/admin/images", authMW)
	admin.GET("", h.list)
	admin.POST("", h.upload)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	images, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, images)
}

func (h *Handler) upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "a file field is required")
		return
	}
	if header.Size > maxUploadBytes {
		response.UnprocessableEntity(c, "file exceeds the 10 MiB upload limit")
		return
	}

	image, err := h.svc.Upload(c.Request.Context(), header)
	if err != nil {
		if errors.Is(err, ErrStorageDisabled) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, image)
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
