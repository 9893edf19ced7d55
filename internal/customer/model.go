package customer

import (
	"net/http"

	"github.com/nvalencia/apartment-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "customer not found")
	ErrMissingFields   = apperror.New(http.StatusBadRequest, "first name, last name, phone and address are all required")
	ErrDuplicate       = apperror.New(http.StatusConflict, "customer already exists")
	ErrMissingCriteria = apperror.New(http.StatusBadRequest, "at least one of first name or phone is required")
)

// Customer is a booking counterpart. Records are created once and never
// mutated; two customers are the same person when first name, last name and
// phone all match exactly.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Address   string
}
