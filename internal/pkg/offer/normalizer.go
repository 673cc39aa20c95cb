// Package offer turns raw flight search offers into display-ready records
// and renders them as markdown or as one table row per leg.
package offer

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fallbackAirline   = "Unknown Airline"
	fallbackDeparture = "Unknown Departure"
	fallbackArrival   = "Unknown Arrival"

	legSeparator = "\n\n"
)

// Normalize converts every raw offer, in order. Missing fields become the
// NotAvailable sentinel, nothing is dropped and it never fails.
func Normalize(raw []RawOffer) []NormalizedOffer {
	results := make([]NormalizedOffer, len(raw))
	for i, o := range raw {
		results[i] = normalizeOffer(o)
	}

	return results
}

func normalizeOffer(o RawOffer) NormalizedOffer {
	legs := make([]NormalizedLeg, len(o.Flights))
	lines := make([]string, len(o.Flights))

	for i, leg := range o.Flights {
		legs[i] = normalizeLeg(leg)
		lines[i] = legs[i].line()
	}

	return NormalizedOffer{
		ItineraryText:        strings.Join(lines, legSeparator),
		TotalDurationMinutes: totalDuration(o),
		EmissionsKg:          emissionsKg(o),
		Price:                price(o),
		Legs:                 legs,
	}
}

func normalizeLeg(leg RawLeg) NormalizedLeg {
	return NormalizedLeg{
		Airline:       leg.Airline.Or(fallbackAirline),
		FlightNumber:  leg.FlightNumber.Or(NotAvailable),
		From:          leg.DepartureAirport.Name.Or(fallbackDeparture),
		To:            leg.ArrivalAirport.Name.Or(fallbackArrival),
		DepartureTime: leg.DepartureAirport.Time.Or(NotAvailable),
		ArrivalTime:   leg.ArrivalAirport.Time.Or(NotAvailable),
		Duration:      leg.Duration.Or(NotAvailable),
		Aircraft:      leg.Airplane.Or(NotAvailable),
		Class:         leg.TravelClass.Or(NotAvailable),
		Legroom:       leg.Legroom.Or(NotAvailable),
	}
}

// line renders e.g. "ANA NH 1 (PEK ➡ NRT)\n🕒 09:00 → 14:00 | 300 min".
func (l NormalizedLeg) line() string {
	return fmt.Sprintf("%s %s (%s ➡ %s)\n🕒 %s → %s | %s min",
		l.Airline, l.FlightNumber, l.From, l.To,
		l.DepartureTime, l.ArrivalTime, l.Duration)
}

func totalDuration(o RawOffer) Value {
	if !o.TotalDuration.Valid {
		return Unknown()
	}

	return Number(strconv.FormatInt(o.TotalDuration.Value, 10))
}

// emissionsKg converts grams to kilograms with one decimal, e.g. 2350 -> "2.4".
func emissionsKg(o RawOffer) Value {
	grams := o.CarbonEmissions.ThisFlight
	if !grams.Valid {
		return Unknown()
	}

	return Number(strconv.FormatFloat(float64(grams.Value)/1000, 'f', 1, 64))
}

func price(o RawOffer) Value {
	switch {
	case !o.Price.Valid():
		return Unknown()
	case o.Price.IsNumber():
		return Number(o.Price.Text())
	default:
		return Text(o.Price.Text())
	}
}
