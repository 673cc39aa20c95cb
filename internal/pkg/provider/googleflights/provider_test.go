package googleflights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/providerutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightsBody = `{
  "search_metadata": {"status": "Success"},
  "best_flights": [
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
    }
  ],
  "other_flights": [
    {"flights": [], "price": 640}
  ]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	providerutils.BaseBackoff = time.Millisecond

	return NewProvider(provider.Config{
		BaseURL:    srv.URL,
		APIKey:     "key",
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		Currency:   "USD",
		Language:   "en",
	})
}

func TestProvider_Search(t *testing.T) {
	roundTrip := dto.FlightSearchRequest{
		Origin:       "HND",
		Destination:  "SIN",
		OutboundDate: "2025-06-01",
		ReturnDate:   "2025-06-08",
	}

	t.Run("round_trip_params", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "google_flights", q.Get("engine"))
			assert.Equal(t, "HND", q.Get("departure_id"))
			assert.Equal(t, "SIN", q.Get("arrival_id"))
			assert.Equal(t, "2025-06-01", q.Get("outbound_date"))
			assert.Equal(t, "2025-06-08", q.Get("return_date"))
			assert.Equal(t, "1", q.Get("type"))
			assert.Equal(t, "USD", q.Get("currency"))
			assert.Equal(t, "en", q.Get("hl"))
			_, _ = w.Write([]byte(flightsBody))
		})

		offers, err := p.Search(context.Background(), roundTrip)

		require.NoError(t, err)
		require.Len(t, offers, 1)

		normalized := offer.Normalize(offers)
		assert.Equal(t, "512", normalized[0].Price.String())
		assert.Equal(t, "1.9", normalized[0].EmissionsKg.String())
	})

	t.Run("one_way_with_other_flights", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "2", q.Get("type"))
			assert.Empty(t, q.Get("return_date"))
			assert.Equal(t, "EUR", q.Get("currency"))
			_, _ = w.Write([]byte(flightsBody))
		})

		req := dto.FlightSearchRequest{
			Origin:              "HND",
			Destination:         "SIN",
			OutboundDate:        "2025-06-01",
			Currency:            "EUR",
			IncludeOtherFlights: true,
		}

		offers, err := p.Search(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, offers, 2)
		assert.Empty(t, offers[1].Flights)
	})

	t.Run("no_results_is_empty", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"Google Flights hasn't returned any results for this query."}`))
		})

		offers, err := p.Search(context.Background(), roundTrip)

		require.NoError(t, err)
		assert.NotNil(t, offers)
		assert.Empty(t, offers)
	})

	t.Run("non_object_offer_fails", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"best_flights":[{"price":1}, "oops"]}`))
		})

		_, err := p.Search(context.Background(), roundTrip)

		assert.ErrorIs(t, err, providerutils.ErrFetchFailure)
	})

	t.Run("missing_best_flights_is_empty", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"search_metadata":{"status":"Success"}}`))
		})

		offers, err := p.Search(context.Background(), roundTrip)

		require.NoError(t, err)
		assert.Empty(t, offers)
	})
}
