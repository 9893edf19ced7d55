package reservation

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nvalencia/apartment-booking-backend/internal/dates"
	"github.com/nvalencia/apartment-booking-backend/internal/pkg/apperror"
)

// Overlaps reports whether the half-open ranges [s1,e1) and [s2,e2)
// intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// findConflicts returns the reservations whose range intersects
// [start, end), skipping excludeID so a reservation never conflicts with
// itself during a room move.
func findConflicts(reservations []*Reservation, start, end time.Time, excludeID int64) []*Reservation {
	var conflicts []*Reservation
	for _, r := range reservations {
		if r.ID == excludeID {
			continue
		}
		if Overlaps(r.StartDate, r.EndDate, start, end) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

// conflictError builds the client-facing conflict failure. The message
// enumerates every clashing reservation with its id and date range so the
// caller can self-diagnose.
func conflictError(roomID int64, conflicts []*Reservation) error {
	parts := make([]string, len(conflicts))
	for i, r := range conflicts {
		parts[i] = fmt.Sprintf("reservation %d (%s to %s)",
			r.ID, dates.Format(r.StartDate), dates.Format(r.EndDate))
	}
	return apperror.Newf(http.StatusConflict,
		"room %d has existing overlapping reservation(s): %s",
		roomID, strings.Join(parts, "; "))
}
