package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) RegisterRoutes(s *gin.Engine, _ gin.HandlerFunc) {
	s.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "MGP Calculator UY1 - Backend is running!")
	})
	s.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "OK")
	})
}
