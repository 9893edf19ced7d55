package apartment

import (
	"net/http"

	"github.com/nvalencia/apartment-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "apartment not found")

// Apartment is a bookable room in the catalog. The catalog is read-only
// from this service's point of view; rooms are provisioned out of band.
type Apartment struct {
	ID             int64
	Capacity       int
	Orientation    string
	View           string
	RegularPrice   int
	TopSeasonPrice int
}
