package http

import "github.com/nvalencia/apartment-booking-backend/internal/apartment"

type ApartmentResponse struct {
	ID             int64  `json:"id"`
	Capacity       int    `json:"capacity"`
	Orientation    string `json:"orientation"`
	View           string `json:"view"`
	RegularPrice   int    `json:"regular_price"`
	TopSeasonPrice int    `json:"top_season_price"`
}

func NewApartmentResponse(a *apartment.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:             a.ID,
		Capacity:       a.Capacity,
		Orientation:    a.Orientation,
		View:           a.View,
		RegularPrice:   a.RegularPrice,
		TopSeasonPrice: a.TopSeasonPrice,
	}
}

// NewApartmentListResponse projects a catalog slice, keeping catalog order
// and never rendering null for an empty list.
func NewApartmentListResponse(apartments []*apartment.Apartment) []ApartmentResponse {
	items := make([]ApartmentResponse, len(apartments))
	for i, a := range apartments {
		items[i] = NewApartmentResponse(a)
	}
	return items
}
