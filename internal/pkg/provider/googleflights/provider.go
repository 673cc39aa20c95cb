package googleflights

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/serpapi"
)

const (
	ProviderName = "GoogleFlights"
	engine       = "google_flights"

	tripTypeRoundTrip = "1"
	tripTypeOneWay    = "2"
)

type searcher interface {
	Search(ctx context.Context, params url.Values, out interface{}) error
}

type Provider struct {
	client   searcher
	currency string
	language string
}

func NewProvider(config provider.Config) *Provider {
	return &Provider{
		client:   serpapi.NewClient(ProviderName, config),
		currency: config.Currency,
		language: config.Language,
	}
}

// Search returns the provider's best offers, followed by the remaining
// offers when the request asks for them. Provider order is kept.
func (p *Provider) Search(ctx context.Context, req dto.FlightSearchRequest) ([]offer.RawOffer, error) {
	var response SearchFlightResponse

	err := p.client.Search(ctx, p.params(req), &response)
	if errors.Is(err, serpapi.ErrNoResults) {
		return []offer.RawOffer{}, nil
	}

	if err != nil {
		return nil, err
	}

	offers := make([]offer.RawOffer, 0, len(response.BestFlights)+len(response.OtherFlights))
	offers = append(offers, response.BestFlights...)

	if req.IncludeOtherFlights {
		offers = append(offers, response.OtherFlights...)
	}

	slog.InfoContext(ctx, "flight offers fetched",
		slog.String("provider", ProviderName),
		slog.Int("best", len(response.BestFlights)),
		slog.Int("other", len(response.OtherFlights)),
		slog.Int("returned", len(offers)))

	return offers, nil
}

func (p *Provider) params(req dto.FlightSearchRequest) url.Values {
	params := url.Values{}
	params.Set("engine", engine)
	params.Set("departure_id", req.Origin)
	params.Set("arrival_id", req.Destination)
	params.Set("outbound_date", req.OutboundDate)

	if req.RoundTrip() {
		params.Set("type", tripTypeRoundTrip)
		params.Set("return_date", req.ReturnDate)
	} else {
		params.Set("type", tripTypeOneWay)
	}

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

	return params
}
