package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
)

// FlightSearchRequest is what the flight search provider is queried with.
type FlightSearchRequest struct {
	Origin              string      `json:"origin" validate:"required"`
	Destination         string      `json:"destination" validate:"required"`
	OutboundDate        string      `json:"outbound_date" validate:"required,datetime=2006-01-02"`
	ReturnDate          string      `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Currency            string      `json:"currency,omitempty" validate:"omitempty,len=3"`
	IncludeOtherFlights bool        `json:"include_other_flights,omitempty"`
	SortOption          *SortOption `json:"sort_option,omitempty"`
}

// RoundTrip reports whether a return date was given.
func (s *FlightSearchRequest) RoundTrip() bool {
	return s.ReturnDate != ""
}

func (s *FlightSearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *FlightSearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return badRequest(err.Error())
	}

	if s.RoundTrip() {
		outbound, _ := time.Parse(DateLayout, s.OutboundDate)
		inbound, _ := time.Parse(DateLayout, s.ReturnDate)

		if inbound.Before(outbound) {
			return badRequest("return_date must not be before outbound_date")
		}
	}

	if s.SortOption != nil {
		if !offer.AllowedSortField[s.SortOption.Field] {
			return badRequest(fmt.Sprintf("Invalid sort field %s", s.SortOption.Field))
		}

		if s.SortOption.Order != "" && s.SortOption.Order != offer.OrderAsc &&
			s.SortOption.Order != offer.OrderDesc {
			return badRequest(fmt.Sprintf("Invalid sort order %s", s.SortOption.Order))
		}
	}

	return nil
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

type Metadata struct {
	TotalResults int  `json:"total_results"`
	TotalRows    int  `json:"total_rows"`
	SearchTimeMs int  `json:"search_time_ms"`
	CacheHit     bool `json:"cache_hit"`
}

// Offer is a normalized offer together with its markdown rendering.
type Offer struct {
	offer.NormalizedOffer
	Markdown string `json:"markdown"`
}

// Table is the one-row-per-leg view of the offers.
type Table struct {
	Columns []string    `json:"columns"`
	Rows    []offer.Row `json:"rows"`
}

// FlightSearchResponse is the response struct for the search flight endpoint
type FlightSearchResponse struct {
	SearchCriteria FlightSearchRequest `json:"search_criteria"`
	Metadata       Metadata            `json:"metadata"`
	Offers         []Offer             `json:"offers"`
	Table          Table               `json:"table"`
}

// NewFlightSearchResponse builds both presentation shapes from normalized offers.
func NewFlightSearchResponse(req FlightSearchRequest, offers []offer.NormalizedOffer) FlightSearchResponse {
	views := make([]Offer, len(offers))
	for i, o := range offers {
		views[i] = Offer{NormalizedOffer: o, Markdown: offer.Markdown(o)}
	}

	rows := offer.Rows(offers)

	return FlightSearchResponse{
		SearchCriteria: req,
		Metadata: Metadata{
			TotalResults: len(offers),
			TotalRows:    len(rows),
		},
		Offers: views,
		Table: Table{
			Columns: offer.Columns,
			Rows:    rows,
		},
	}
}

// NormalizedOffers strips the markdown views.
func (r FlightSearchResponse) NormalizedOffers() []offer.NormalizedOffer {
	offers := make([]offer.NormalizedOffer, len(r.Offers))
	for i, o := range r.Offers {
		offers[i] = o.NormalizedOffer
	}

	return offers
}
