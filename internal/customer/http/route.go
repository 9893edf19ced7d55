package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/customers")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.Search)
		group.GET("/:id", h.Get)
	}
}
