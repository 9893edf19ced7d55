package reservation

import (
	"net/http"
	"time"

	"github.com/nvalencia/apartment-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrCustomerNotFound = apperror.New(http.StatusNotFound, "customer not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
)

// Reservation binds a customer to a room for a half-open date range
// [StartDate, EndDate): the end date is the checkout day, so a stay ending
// on a given day and one starting that same day do not collide.
//
// The date range is fixed at creation. Only the room assignment may change
// afterwards; cancelling deletes the record entirely.
type Reservation struct {
	ID         int64
	CustomerID int64
	RoomID     int64
	StartDate  time.Time
	EndDate    time.Time
}

// Info is the read projection returned to callers listing reservations,
// with dates rendered in their YYYY-MM-DD wire form.
type Info struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}
