package auth

import (
	"errors"

	"github.com/aurelia-studio/site-core/internal/middleware"
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
	group := rg.Group("/auth")
	group.POST("/login", h.login)
	group.GET("/check", authMW, h.check)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.Login(dto.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) || errors.Is(err, ErrAuthDisabled) {
			response.UnauthorizedMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token})
}

func (h *Handler) check(c *gin.Context) {
	response.OK(c, gin.H{
		"ok":      1,
		"subject": middleware.CurrentSubject(c),
	})
}
