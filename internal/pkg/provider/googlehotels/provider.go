package googlehotels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/serpapi"
)

const (
	ProviderName = "GoogleHotels"
	engine       = "google_hotels"

	unknownHotel = "Unknown Hotel"
)

type searcher interface {
	Search(ctx context.Context, params url.Values, out interface{}) error
}

type Provider struct {
	client   searcher
	currency string
	language string
	country  string
}

func NewProvider(config provider.Config) *Provider {
	return &Provider{
		client:   serpapi.NewClient(ProviderName, config),
		currency: config.Currency,
		language: config.Language,
		country:  config.Country,
	}
}

func (p *Provider) Search(ctx context.Context, req dto.HotelSearchRequest) ([]dto.Hotel, error) {
	var response SearchHotelResponse

	err := p.client.Search(ctx, p.params(req), &response)
	if errors.Is(err, serpapi.ErrNoResults) {
		return []dto.Hotel{}, nil
	}

	if err != nil {
		return nil, err
	}

	properties := response.Properties
	if len(properties) == 0 {
		properties = response.HotelsResults
	}

	hotels := make([]dto.Hotel, 0, len(properties))
	for _, property := range properties {
		hotels = append(hotels, hotelToDTO(property))
	}

	slog.InfoContext(ctx, "hotels fetched",
		slog.String("provider", ProviderName),
		slog.Int("total", len(hotels)))

	return hotels, nil
}

func (p *Provider) params(req dto.HotelSearchRequest) url.Values {
	params := url.Values{}
	params.Set("engine", engine)
	params.Set("q", req.Location)
	params.Set("check_in_date", req.CheckInDate)
	params.Set("check_out_date", req.CheckOutDate)

	currency := req.Currency
	if currency == "" {
		currency = p.currency
	}

	if currency != "" {
		params.Set("currency", currency)
	}

	if p.language != "" {
		params.Set("hl", p.language)
	}

	if p.country != "" {
		params.Set("gl", p.country)
	}

	return params
}

func hotelToDTO(p Property) dto.Hotel {
	price := p.Price.value()
	if !price.Valid() {
		price = p.RatePerNight.value()
	}

	if !price.Valid() {
		price = p.TotalRate.value()
	}

	rating := p.OverallRating
	if !rating.Valid() {
		rating = p.Rating
	}

	return dto.Hotel{
		Name:    p.Name.Or(unknownHotel),
		Price:   price.Or(offer.NotAvailable),
		Rating:  rating.Or(offer.NotAvailable),
		Reviews: p.Reviews.Or(offer.NotAvailable),
		Link:    p.Link.Or(offer.NotAvailable),
	}
}

// Summary renders hotels as the plain-text block handed to the planner.
func Summary(hotels []dto.Hotel) string {
	var sb strings.Builder

	for i, h := range hotels {
		if i > 0 {
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "- %s | price: %s | rating: %s (%s reviews) | %s",
			h.Name, h.Price, h.Rating, h.Reviews, h.Link)
	}

	return sb.String()
}
