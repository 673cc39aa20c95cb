package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/itinerary"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/googlehotels"
	"golang.org/x/sync/errgroup"
)

// flightInfoOffers is how many offers are described to the itinerary planner.
const flightInfoOffers = 3

const noHotelsInfo = "No hotels found."

type OfferCacher interface {
	GetLockKey(req dto.FlightSearchRequest) string
	GetCacheKey(req dto.FlightSearchRequest) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetOffers(ctx context.Context, key string) ([]offer.RawOffer, error)
	SetOffers(ctx context.Context, key string, offers []offer.RawOffer, expiration time.Duration) error
}

type ItineraryPlanner interface {
	RecommendHotel(ctx context.Context, hotelInfo string) (string, error)
	CreateItinerary(ctx context.Context, req itinerary.Request) (string, error)
}

// PlannerService serves flight search, hotel search and trip planning.
// Cache and Planner are optional.
type PlannerService struct {
	Flights         provider.FlightProvider
	Hotels          provider.HotelProvider
	Planner         ItineraryPlanner
	Cache           OfferCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewPlannerService(flights provider.FlightProvider, hotels provider.HotelProvider,
	planner ItineraryPlanner, cache OfferCacher,
	cacheExpiration time.Duration, lockTimeout time.Duration) *PlannerService {
	return &PlannerService{
		Flights:         flights,
		Hotels:          hotels,
		Planner:         planner,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// SearchFlights fetches offers, normalizes every one of them in provider
// order and builds both presentation shapes. Sorting is applied only when
// requested.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search flight offers and return them normalized
// @Param        request  body      dto.FlightSearchRequest  true  "Search Criteria"
// @Success      200      {object}  dto.FlightSearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *PlannerService) SearchFlights(
	ctx context.Context,
	req dto.FlightSearchRequest,
) (dto.FlightSearchResponse, error) {
	startTime := time.Now()

	raw, cacheHit, err := s.fetchOffers(ctx, req)
	if err != nil {
		return dto.FlightSearchResponse{}, fmt.Errorf("failed to get flights from provider: %w", err)
	}

	offers := offer.Normalize(raw)

	if req.SortOption != nil {
		offers = offer.SortOffers(offers, req.SortOption.Field, req.SortOption.Order)
	}

	resp := dto.NewFlightSearchResponse(req, offers)
	resp.Metadata.SearchTimeMs = int(time.Since(startTime).Milliseconds())
	resp.Metadata.CacheHit = cacheHit

	slog.InfoContext(ctx, "flight search finished",
		slog.Int("offers", resp.Metadata.TotalResults),
		slog.Int("rows", resp.Metadata.TotalRows),
		slog.Bool("cache_hit", cacheHit))

	return resp, nil
}

func (s *PlannerService) fetchOffers(ctx context.Context,
	req dto.FlightSearchRequest,
) ([]offer.RawOffer, bool, error) {
	if s.Cache == nil {
		raw, err := s.Flights.Search(ctx, req)
		return raw, false, err
	}

	cacheKey := s.Cache.GetCacheKey(req)
	lockKey := s.Cache.GetLockKey(req)

	raw, err := s.Cache.GetOffers(ctx, cacheKey)
	if err == nil {
		return raw, true, nil
	}

	slog.WarnContext(ctx, "failed to get offers from cache", slog.String("error", err.Error()))

	raw, err = s.Flights.Search(ctx, req)
	if err != nil {
		return nil, false, err
	}

	// only the lock holder writes, concurrent misses for the same search
	// still fetch from the provider but skip the write
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire cache lock", slog.String("error", err.Error()))
		return raw, false, nil
	}

	if acquired {
		defer func() {
			if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
				slog.WarnContext(ctx, "failed to release cache lock", slog.String("error", err.Error()))
			}
		}()

		if err := s.Cache.SetOffers(ctx, cacheKey, raw, s.CacheExpiration); err != nil {
			slog.WarnContext(ctx, "failed to set offers to cache", slog.String("error", err.Error()))
		}
	}

	return raw, false, nil
}

// SearchHotels godoc
// @Summary      Search hotels
// @Tags         Hotels
// @Param        request  body      dto.HotelSearchRequest  true  "Search Criteria"
// @Success      200      {object}  dto.HotelSearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/hotels/search [post]
func (s *PlannerService) SearchHotels(
	ctx context.Context,
	req dto.HotelSearchRequest,
) (dto.HotelSearchResponse, error) {
	hotels, err := s.Hotels.Search(ctx, req)
	if err != nil {
		return dto.HotelSearchResponse{}, fmt.Errorf("failed to get hotels from provider: %w", err)
	}

	return dto.HotelSearchResponse{
		SearchCriteria: req,
		Hotels:         hotels,
	}, nil
}

// PlanTrip searches hotels and, when airports are given, flights
// concurrently, then asks the planner for a recommendation and itinerary.
// PlanTrip godoc
// @Summary      Plan a trip
// @Tags         Trips
// @Param        request  body      dto.TripPlanRequest  true  "Trip"
// @Success      200      {object}  dto.TripPlan
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/trips/plan [post]
func (s *PlannerService) PlanTrip(ctx context.Context, req dto.TripPlanRequest) (dto.TripPlan, error) {
	var (
		flights *dto.FlightSearchResponse
		hotels  dto.HotelSearchResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	if req.WantsFlights() {
		g.Go(func() error {
			resp, err := s.SearchFlights(gctx, req.FlightSearchRequest())
			if err != nil {
				return err
			}

			flights = &resp

			return nil
		})
	}

	g.Go(func() error {
		var err error
		hotels, err = s.SearchHotels(gctx, req.HotelSearchRequest())
		return err
	})

	if err := g.Wait(); err != nil {
		return dto.TripPlan{}, err
	}

	plan := dto.TripPlan{
		SearchCriteria: req,
		Days:           req.Days(),
		Flights:        flights,
		Hotels:         hotels.Hotels,
	}

	if s.Planner == nil {
		return plan, nil
	}

	hotelInfo := googlehotels.Summary(hotels.Hotels)
	if hotelInfo == "" {
		hotelInfo = noHotelsInfo
	}

	recommendation, err := s.Planner.RecommendHotel(ctx, hotelInfo)
	if err != nil {
		return dto.TripPlan{}, fmt.Errorf("failed to recommend hotel: %w", err)
	}

	plan.HotelRecommendation = recommendation

	itineraryText, err := s.Planner.CreateItinerary(ctx, itinerary.Request{
		Destination: req.Destination,
		Days:        plan.Days,
		FlightInfo:  flightInfo(req, flights),
		HotelInfo:   recommendation,
	})
	if err != nil {
		return dto.TripPlan{}, fmt.Errorf("failed to create itinerary: %w", err)
	}

	plan.Itinerary = itineraryText

	return plan, nil
}

// flightInfo describes the first offers in markdown, or falls back to a
// default arrival and departure schedule when there are none.
func flightInfo(req dto.TripPlanRequest, flights *dto.FlightSearchResponse) string {
	if flights == nil || len(flights.Offers) == 0 {
		return fmt.Sprintf("Arriving in %s on %s at 9:00 AM, returning on %s at 5:00 PM",
			req.Destination, req.CheckInDate, req.CheckOutDate)
	}

	offers := flights.NormalizedOffers()
	if len(offers) > flightInfoOffers {
		offers = offers[:flightInfoOffers]
	}

	return offer.MarkdownDocument(offers)
}
