package offer

import (
	"fmt"
	"strings"
)

const markdownFormat = "%s\n💰 Total Price: %s\n🕒 Total Duration: %s min\n🌍 Estimated Emissions: %s\n"

// Columns is the header of the per-leg table, in Row.Values order.
var Columns = []string{
	"Airline", "Flight #", "From", "To", "Departure Time", "Arrival Time", "Duration",
	"Aircraft", "Class", "Legroom", "Total Duration", "Emissions", "Price",
}

// Markdown renders one offer as its itinerary followed by the three summary lines.
func Markdown(o NormalizedOffer) string {
	return fmt.Sprintf(markdownFormat,
		o.ItineraryText, o.Price, o.TotalDurationMinutes, o.EmissionsKg)
}

// MarkdownDocument renders all offers separated by a blank line.
func MarkdownDocument(offers []NormalizedOffer) string {
	blocks := make([]string, len(offers))
	for i, o := range offers {
		blocks[i] = Markdown(o)
	}

	return strings.Join(blocks, "\n")
}

// Row is one leg with its offer's totals repeated.
type Row struct {
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
	TotalDuration string `json:"total_duration"`
	Emissions     string `json:"emissions"`
	Price         string `json:"price"`
}

// Rows flattens offers into one row per leg. Offers without legs add no rows.
func Rows(offers []NormalizedOffer) []Row {
	rows := make([]Row, 0, len(offers))

	for _, o := range offers {
		for _, leg := range o.Legs {
			rows = append(rows, Row{
				Airline:       leg.Airline,
				FlightNumber:  leg.FlightNumber,
				From:          leg.From,
				To:            leg.To,
				DepartureTime: leg.DepartureTime,
				ArrivalTime:   leg.ArrivalTime,
				Duration:      leg.Duration,
				Aircraft:      leg.Aircraft,
				Class:         leg.Class,
				Legroom:       leg.Legroom,
				TotalDuration: o.TotalDurationMinutes.String(),
				Emissions:     o.EmissionsKg.String(),
				Price:         o.Price.String(),
			})
		}
	}

	return rows
}

// Values returns the cells in Columns order.
func (r Row) Values() []string {
	return []string{
		r.Airline, r.FlightNumber, r.From, r.To, r.DepartureTime, r.ArrivalTime, r.Duration,
		r.Aircraft, r.Class, r.Legroom, r.TotalDuration, r.Emissions, r.Price,
	}
}

// RowValues returns every row as a string slice, ready for table writers.
func RowValues(rows []Row) [][]string {
	values := make([][]string, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}

	return values
}
