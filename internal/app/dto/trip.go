package dto

import (
	"fmt"
	"net/http"
	"time"
)

// TripPlanRequest asks for hotels, an optional flight search and an itinerary.
// Flights are searched only when both airports are given.
type TripPlanRequest struct {
	Destination        string `json:"destination" validate:"required"`
	OriginAirport      string `json:"origin_airport,omitempty"`
	DestinationAirport string `json:"destination_airport,omitempty" validate:"required_with=OriginAirport"`
	CheckInDate        string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate       string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Currency           string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

func (t *TripPlanRequest) Bind(r *http.Request) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (t *TripPlanRequest) Validate() error {
	if err := ValidateSingleError(t); err != nil {
		return badRequest(err.Error())
	}

	return validateStay(t.CheckInDate, t.CheckOutDate)
}

// WantsFlights reports whether a flight search is part of the plan.
func (t *TripPlanRequest) WantsFlights() bool {
	return t.OriginAirport != "" && t.DestinationAirport != ""
}

// Days is the number of nights between check-in and check-out, at least 1.
func (t *TripPlanRequest) Days() int {
	in, errIn := time.Parse(DateLayout, t.CheckInDate)
	out, errOut := time.Parse(DateLayout, t.CheckOutDate)

	if errIn != nil || errOut != nil {
		return 1
	}

	days := int(out.Sub(in).Hours() / 24)
	if days < 1 {
		return 1
	}

	return days
}

func (t *TripPlanRequest) FlightSearchRequest() FlightSearchRequest {
	return FlightSearchRequest{
		Origin:       t.OriginAirport,
		Destination:  t.DestinationAirport,
		OutboundDate: t.CheckInDate,
		ReturnDate:   t.CheckOutDate,
		Currency:     t.Currency,
	}
}

func (t *TripPlanRequest) HotelSearchRequest() HotelSearchRequest {
	return HotelSearchRequest{
		Location:     t.Destination,
		CheckInDate:  t.CheckInDate,
		CheckOutDate: t.CheckOutDate,
		Currency:     t.Currency,
	}
}

// TripPlan is the full answer for one planning request.
type TripPlan struct {
	SearchCriteria      TripPlanRequest       `json:"search_criteria"`
	Days                int                   `json:"days"`
	Flights             *FlightSearchResponse `json:"flights,omitempty"`
	Hotels              []Hotel               `json:"hotels"`
	HotelRecommendation string                `json:"hotel_recommendation,omitempty"`
	Itinerary           string                `json:"itinerary,omitempty"`
}
