// Package dates parses and validates the calendar-date inputs used by the
// reservation engine. Dates travel as YYYY-MM-DD strings on the wire and as
// time.Time values internally.
package dates

import (
	"net/http"
	"time"

	"github.com/nvalencia/apartment-booking-backend/internal/pkg/apperror"
)

// Layout is the only accepted textual date format.
const Layout = "2006-01-02"

var (
	ErrEmptyDates    = apperror.New(http.StatusBadRequest, "dates must not be empty")
	ErrInvalidFormat = apperror.New(http.StatusBadRequest, "date must have format YYYY-MM-DD")
	ErrInvertedRange = apperror.New(http.StatusBadRequest, "start date must be before end date")
)

// Parse converts a YYYY-MM-DD string into a time.Time.
// Empty input or any deviation from the layout fails with ErrInvalidFormat.
func Parse(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidFormat
	}
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

// ValidateRange parses a raw date pair and enforces start < end.
// End date is the checkout day, so equal dates are an inverted range too.
func ValidateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, ErrEmptyDates
	}
	start, err := Parse(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := Parse(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}
	return start, end, nil
}

// Format renders a date back into its wire representation.
func Format(t time.Time) string {
	return t.Format(Layout)
}
