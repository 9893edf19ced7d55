package http

import (
	"github.com/nvalencia/apartment-booking-backend/internal/dates"
	"github.com/nvalencia/apartment-booking-backend/internal/reservation"
)

type CreateReservationRequest struct {
	CustomerID int64  `json:"customer_id" binding:"required"`
	RoomID     int64  `json:"room_id" binding:"required"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type MoveRoomRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
}

type ListReservationsRequest struct {
	CustomerID int64 `form:"customer_id" binding:"required"`
}

type AvailabilityRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type ReservationResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func NewReservationResponse(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         res.ID,
		CustomerID: res.CustomerID,
		RoomID:     res.RoomID,
		StartDate:  dates.Format(res.StartDate),
		EndDate:    dates.Format(res.EndDate),
	}
}
