package provider

import (
	"context"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/providerutils"
)

// Config is shared by every SerpAPI-backed provider.
type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      providerutils.RateLimiter
	Currency     string
	Language     string
	Country      string
}

// FlightProvider returns raw flight offers in provider order.
type FlightProvider interface {
	Search(ctx context.Context, req dto.FlightSearchRequest) ([]offer.RawOffer, error)
}

// HotelProvider returns hotel listings already reduced to display fields.
type HotelProvider interface {
	Search(ctx context.Context, req dto.HotelSearchRequest) ([]dto.Hotel, error)
}
