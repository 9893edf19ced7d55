package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListByCustomer)
		group.GET("/available-apartments", h.AvailableApartments)
		group.DELETE("/:id", h.Cancel)
		group.PATCH("/:id/room", h.MoveRoom)
	}
}
