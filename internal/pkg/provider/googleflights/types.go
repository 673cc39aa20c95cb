package googleflights

import "github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"

// SearchFlightResponse is the subset of the google_flights engine payload
// the service reads.
type SearchFlightResponse struct {
	BestFlights  []offer.RawOffer `json:"best_flights"`
	OtherFlights []offer.RawOffer `json:"other_flights"`
}
