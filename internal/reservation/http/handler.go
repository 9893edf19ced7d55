package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	aptHttp "github.com/nvalencia/apartment-booking-backend/internal/apartment/http"
	"github.com/nvalencia/apartment-booking-backend/internal/pkg/response"
	"github.com/nvalencia/apartment-booking-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Create(c.Request.Context(), body.CustomerID, body.RoomID, body.StartDate, body.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) AvailableApartments(c *gin.Context) {
	var query AvailabilityRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	apartments, err := h.service.FindAvailableApartments(c.Request.Context(), query.StartDate, query.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, aptHttp.NewApartmentListResponse(apartments))
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	var query ListReservationsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	infos, err := h.service.FindByCustomer(c.Request.Context(), query.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if infos == nil {
		infos = []reservation.Info{}
	}
	c.JSON(http.StatusOK, infos)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) MoveRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	var body MoveRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.MoveRoom(c.Request.Context(), id, body.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewReservationResponse(res))
}
