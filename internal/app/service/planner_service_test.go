//go:build unit

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/itinerary"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/providerutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const offersDoc = `[
  {
    "flights": [
      {
        "airline": "ANA",
        "flight_number": "NH 847",
        "departure_airport": {"name": "Haneda Airport", "time": "2025-06-01 10:00"},
        "arrival_airport": {"name": "Changi Airport", "time": "2025-06-01 16:45"},
        "duration": 405
      }
    ],
    "total_duration": 405,
    "carbon_emissions": {"this_flight": 1890},
    "price": 512
  },
  {
    "flights": [
      {"airline": "JAL", "flight_number": "JL 35", "duration": 420},
      {"airline": "JAL", "flight_number": "JL 36", "duration": 60}
    ],
    "total_duration": 480,
    "price": 430
  }
]`

func rawOffers(t *testing.T) []offer.RawOffer {
	t.Helper()

	var raw []offer.RawOffer
	require.NoError(t, json.Unmarshal([]byte(offersDoc), &raw))

	return raw
}

type mockField struct {
	cache   *MockOfferCacher
	flights *provider.MockFlightProvider
	hotels  *provider.MockHotelProvider
	planner *MockItineraryPlanner
}

func newMockField(t *testing.T) mockField {
	return mockField{
		cache:   NewMockOfferCacher(t),
		flights: provider.NewMockFlightProvider(t),
		hotels:  provider.NewMockHotelProvider(t),
		planner: NewMockItineraryPlanner(t),
	}
}

func TestPlannerService_SearchFlights(t *testing.T) {
	req := dto.FlightSearchRequest{
		Origin:       "HND",
		Destination:  "SIN",
		OutboundDate: "2025-06-01",
	}

	searchFlightRequest := func(
		req dto.FlightSearchRequest,
		withCache bool,
		setupMock func(m mockField),
		check func(t *testing.T, got dto.FlightSearchResponse),
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := newMockField(t)
			setupMock(m)

			s := &PlannerService{
				Flights:         m.flights,
				CacheExpiration: 10 * time.Minute,
				LockTimeout:     5 * time.Second,
			}
			if withCache {
				s.Cache = m.cache
			}

			got, err := s.SearchFlights(context.Background(), req)

			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			require.NoError(t, err)
			check(t, got)
		}
	}

	t.Run("without_cache", searchFlightRequest(req, false,
		func(m mockField) {
			m.flights.On("Search", mock.Anything, req).Return(rawOffers(t), nil).Once()
		},
		func(t *testing.T, got dto.FlightSearchResponse) {
			assert.Equal(t, 2, got.Metadata.TotalResults)
			assert.Equal(t, 3, got.Metadata.TotalRows)
			assert.False(t, got.Metadata.CacheHit)
			assert.Equal(t, "512", got.Offers[0].Price.String())
			assert.Equal(t, "1.9", got.Offers[0].EmissionsKg.String())
			assert.Equal(t, "N/A", got.Offers[1].EmissionsKg.String())
			assert.Contains(t, got.Offers[0].Markdown, "💰 Total Price: 512")
			assert.Equal(t, offer.Columns, got.Table.Columns)
			assert.Equal(t, req, got.SearchCriteria)
		},
		nil,
	))

	t.Run("cache_hit", searchFlightRequest(req, true,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetOffers", mock.Anything, "cache-key").Return(rawOffers(t), nil)
		},
		func(t *testing.T, got dto.FlightSearchResponse) {
			assert.True(t, got.Metadata.CacheHit)
			assert.Equal(t, 2, got.Metadata.TotalResults)
		},
		nil,
	))

	t.Run("cache_miss_stores_offers", searchFlightRequest(req, true,
		func(m mockField) {
			raw := rawOffers(t)
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetOffers", mock.Anything, "cache-key").Return(nil, errors.New("miss"))
			m.flights.On("Search", mock.Anything, req).Return(raw, nil).Once()
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
			m.cache.On("SetOffers", mock.Anything, "cache-key", raw, 10*time.Minute).Return(nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
		},
		func(t *testing.T, got dto.FlightSearchResponse) {
			assert.False(t, got.Metadata.CacheHit)
			assert.Equal(t, 2, got.Metadata.TotalResults)
		},
		nil,
	))

	t.Run("cache_miss_lock_not_acquired", searchFlightRequest(req, true,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetOffers", mock.Anything, "cache-key").Return(nil, errors.New("miss"))
			m.flights.On("Search", mock.Anything, req).Return(rawOffers(t), nil).Once()
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, nil)
		},
		func(t *testing.T, got dto.FlightSearchResponse) {
			assert.Equal(t, 2, got.Metadata.TotalResults)
		},
		nil,
	))

	t.Run("empty_result", searchFlightRequest(req, false,
		func(m mockField) {
			m.flights.On("Search", mock.Anything, req).Return([]offer.RawOffer{}, nil).Once()
		},
		func(t *testing.T, got dto.FlightSearchResponse) {
			assert.Equal(t, 0, got.Metadata.TotalResults)
			assert.NotNil(t, got.Offers)
			assert.Empty(t, got.Table.Rows)
		},
		nil,
	))

	t.Run("provider_failure", searchFlightRequest(req, false,
		func(m mockField) {
			m.flights.On("Search", mock.Anything, req).
				Return(nil, providerutils.FetchFailure(errors.New("unexpected status 401"))).Once()
		},
		nil,
		providerutils.ErrFetchFailure,
	))

	sorted := req
	sorted.SortOption = &dto.SortOption{Field: offer.SortByPrice, Order: offer.OrderAsc}

	t.Run("sorted_by_price", searchFlightRequest(sorted, false,
		func(m mockField) {
			m.flights.On("Search", mock.Anything, sorted).Return(rawOffers(t), nil).Once()
		},
		func(t *testing.T, got dto.FlightSearchResponse) {
			require.Len(t, got.Offers, 2)
			assert.Equal(t, "430", got.Offers[0].Price.String())
			assert.Equal(t, "512", got.Offers[1].Price.String())
		},
		nil,
	))
}

func TestPlannerService_SearchHotels(t *testing.T) {
	req := dto.HotelSearchRequest{Location: "Tokyo", CheckInDate: "2025-06-01", CheckOutDate: "2025-06-04"}

	t.Run("success", func(t *testing.T) {
		m := newMockField(t)
		hotels := []dto.Hotel{{Name: "Park Hyatt", Price: "$620", Rating: "4.6", Reviews: "2100", Link: "l"}}
		m.hotels.On("Search", mock.Anything, req).Return(hotels, nil).Once()

		s := &PlannerService{Hotels: m.hotels}
		got, err := s.SearchHotels(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, dto.HotelSearchResponse{SearchCriteria: req, Hotels: hotels}, got)
	})

	t.Run("failure", func(t *testing.T) {
		m := newMockField(t)
		m.hotels.On("Search", mock.Anything, req).Return(nil, providerutils.ErrRetryExceeded).Once()

		s := &PlannerService{Hotels: m.hotels}
		_, err := s.SearchHotels(context.Background(), req)

		assert.ErrorIs(t, err, providerutils.ErrRetryExceeded)
	})
}

func TestPlannerService_PlanTrip(t *testing.T) {
	hotels := []dto.Hotel{{Name: "Park Hyatt", Price: "$620", Rating: "4.6", Reviews: "2100", Link: "l"}}

	trip := dto.TripPlanRequest{
		Destination:        "Tokyo",
		OriginAirport:      "SIN",
		DestinationAirport: "HND",
		CheckInDate:        "2025-06-01",
		CheckOutDate:       "2025-06-04",
	}

	t.Run("with_flights_and_planner", func(t *testing.T) {
		m := newMockField(t)
		m.flights.On("Search", mock.Anything, trip.FlightSearchRequest()).Return(rawOffers(t), nil).Once()
		m.hotels.On("Search", mock.Anything, trip.HotelSearchRequest()).Return(hotels, nil).Once()
		m.planner.On("RecommendHotel", mock.Anything, "- Park Hyatt | price: $620 | rating: 4.6 (2100 reviews) | l").
			Return("Stay at Park Hyatt", nil).Once()
		m.planner.On("CreateItinerary", mock.Anything, mock.MatchedBy(func(r itinerary.Request) bool {
			return r.Destination == "Tokyo" && r.Days == 3 &&
				r.HotelInfo == "Stay at Park Hyatt" &&
				assert.Contains(t, r.FlightInfo, "ANA NH 847 (Haneda Airport ➡ Changi Airport)")
		})).Return("## Day 1", nil).Once()

		s := &PlannerService{Flights: m.flights, Hotels: m.hotels, Planner: m.planner}
		got, err := s.PlanTrip(context.Background(), trip)

		require.NoError(t, err)
		require.NotNil(t, got.Flights)
		assert.Equal(t, 2, got.Flights.Metadata.TotalResults)
		assert.Equal(t, 3, got.Days)
		assert.Equal(t, hotels, got.Hotels)
		assert.Equal(t, "Stay at Park Hyatt", got.HotelRecommendation)
		assert.Equal(t, "## Day 1", got.Itinerary)
	})

	t.Run("default_schedule_without_airports", func(t *testing.T) {
		req := trip
		req.OriginAirport = ""
		req.DestinationAirport = ""

		m := newMockField(t)
		m.hotels.On("Search", mock.Anything, req.HotelSearchRequest()).Return([]dto.Hotel{}, nil).Once()
		m.planner.On("RecommendHotel", mock.Anything, "No hotels found.").Return("none", nil).Once()
		m.planner.On("CreateItinerary", mock.Anything, itinerary.Request{
			Destination: "Tokyo",
			Days:        3,
			FlightInfo:  "Arriving in Tokyo on 2025-06-01 at 9:00 AM, returning on 2025-06-04 at 5:00 PM",
			HotelInfo:   "none",
		}).Return("plan", nil).Once()

		s := &PlannerService{Flights: m.flights, Hotels: m.hotels, Planner: m.planner}
		got, err := s.PlanTrip(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, got.Flights)
		assert.Equal(t, "plan", got.Itinerary)
	})

	t.Run("without_planner", func(t *testing.T) {
		m := newMockField(t)
		m.flights.On("Search", mock.Anything, trip.FlightSearchRequest()).Return(rawOffers(t), nil).Once()
		m.hotels.On("Search", mock.Anything, trip.HotelSearchRequest()).Return(hotels, nil).Once()

		s := &PlannerService{Flights: m.flights, Hotels: m.hotels}
		got, err := s.PlanTrip(context.Background(), trip)

		require.NoError(t, err)
		assert.Empty(t, got.Itinerary)
		assert.Empty(t, got.HotelRecommendation)
	})

	t.Run("hotel_failure", func(t *testing.T) {
		m := newMockField(t)
		m.flights.On("Search", mock.Anything, trip.FlightSearchRequest()).Return(rawOffers(t), nil).Maybe()
		m.hotels.On("Search", mock.Anything, trip.HotelSearchRequest()).
			Return(nil, providerutils.FetchFailure(errors.New("boom"))).Once()

		s := &PlannerService{Flights: m.flights, Hotels: m.hotels, Planner: m.planner}
		_, err := s.PlanTrip(context.Background(), trip)

		assert.ErrorIs(t, err, providerutils.ErrFetchFailure)
	})

	t.Run("itinerary_failure", func(t *testing.T) {
		m := newMockField(t)
		m.flights.On("Search", mock.Anything, trip.FlightSearchRequest()).Return(rawOffers(t), nil).Once()
		m.hotels.On("Search", mock.Anything, trip.HotelSearchRequest()).Return(hotels, nil).Once()
		m.planner.On("RecommendHotel", mock.Anything, mock.Anything).Return("x", nil).Once()
		m.planner.On("CreateItinerary", mock.Anything, mock.Anything).
			Return("", itinerary.ErrGenerationFailed).Once()

		s := &PlannerService{Flights: m.flights, Hotels: m.hotels, Planner: m.planner}
		_, err := s.PlanTrip(context.Background(), trip)

		assert.ErrorIs(t, err, itinerary.ErrGenerationFailed)
	})
}
