package offer

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/optional"
)

// NotAvailable is the sentinel shown for any field the provider left out.
const NotAvailable = "N/A"

var ErrOfferNotObject = errors.New("flight offer is not a JSON object")

// RawOffer is one offer as returned by the flight search provider.
// Every field is optional at every depth.
type RawOffer struct {
	TotalDuration   optional.Int    `json:"total_duration"`
	CarbonEmissions CarbonEmissions `json:"carbon_emissions"`
	Price           optional.Scalar `json:"price"`
	Flights         Legs            `json:"flights"`
}

// UnmarshalJSON rejects anything that is not an object, the only shape error
// that fails a whole provider document.
func (o *RawOffer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return ErrOfferNotObject
	}

	type rawOffer RawOffer

	var decoded rawOffer
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*o = RawOffer(decoded)

	return nil
}

type CarbonEmissions struct {
	ThisFlight optional.Int `json:"this_flight"`
}

func (c *CarbonEmissions) UnmarshalJSON(data []byte) error {
	type carbonEmissions CarbonEmissions

	var decoded carbonEmissions
	if err := json.Unmarshal(data, &decoded); err != nil {
		decoded = carbonEmissions{}
	}

	*c = CarbonEmissions(decoded)

	return nil
}

// Legs decodes to nil when the provider sends something other than an array.
type Legs []RawLeg

func (l *Legs) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		*l = nil
		return nil
	}

	legs := make(Legs, len(items))
	for i, item := range items {
		_ = legs[i].UnmarshalJSON(item)
	}

	*l = legs

	return nil
}

// RawLeg is one direct flight segment of an offer.
type RawLeg struct {
	Airline          optional.String `json:"airline"`
	FlightNumber     optional.String `json:"flight_number"`
	DepartureAirport Airport         `json:"departure_airport"`
	ArrivalAirport   Airport         `json:"arrival_airport"`
	Duration         optional.Int    `json:"duration"`
	Airplane         optional.String `json:"airplane"`
	TravelClass      optional.String `json:"travel_class"`
	Legroom          optional.String `json:"legroom"`
}

func (l *RawLeg) UnmarshalJSON(data []byte) error {
	type rawLeg RawLeg

	var decoded rawLeg
	if err := json.Unmarshal(data, &decoded); err != nil {
		decoded = rawLeg{}
	}

	*l = RawLeg(decoded)

	return nil
}

type Airport struct {
	Name optional.String `json:"name"`
	Time optional.String `json:"time"`
}

func (a *Airport) UnmarshalJSON(data []byte) error {
	type airport Airport

	var decoded airport
	if err := json.Unmarshal(data, &decoded); err != nil {
		decoded = airport{}
	}

	*a = Airport(decoded)

	return nil
}

// NormalizedOffer is the display-ready form of a RawOffer.
type NormalizedOffer struct {
	ItineraryText        string          `json:"itinerary_text"`
	TotalDurationMinutes Value           `json:"total_duration_minutes"`
	EmissionsKg          Value           `json:"emissions_kg"`
	Price                Value           `json:"price"`
	Legs                 []NormalizedLeg `json:"legs"`
}

type NormalizedLeg struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
	Aircraft      string `json:"aircraft"`
	Class         string `json:"class"`
	Legroom       string `json:"legroom"`
}

// Value is a number, a text, or the NotAvailable sentinel.
// Numbers keep their literal text so "2.0" stays "2.0".
type Value struct {
	text   string
	number bool
	known  bool
}

func Unknown() Value {
	return Value{text: NotAvailable}
}

func Number(literal string) Value {
	return Value{text: literal, number: true, known: true}
}

func Text(v string) Value {
	return Value{text: v, known: true}
}

func (v Value) String() string {
	if !v.known {
		return NotAvailable
	}

	return v.text
}

func (v Value) Known() bool {
	return v.known
}

// Float64 returns the numeric value for numbers and numeric texts.
func (v Value) Float64() (float64, bool) {
	if !v.known {
		return 0, false
	}

	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.number {
		return []byte(v.text), nil
	}

	return json.Marshal(v.String())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s optional.Scalar
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}

	switch {
	case !s.Valid():
		*v = Unknown()
	case s.IsNumber():
		*v = Number(s.Text())
	case s.Text() == NotAvailable:
		*v = Unknown()
	default:
		*v = Text(s.Text())
	}

	return nil
}
