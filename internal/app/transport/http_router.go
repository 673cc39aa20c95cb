package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-planner-service/internal/app/config"
	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-planner-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.PlannerEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.FlightSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/hotels/search", httptransport.MakeHandlerFunc(
			endpts.PlannerEndpoint.SearchHotels,
			httptransport.DecodeRequest[dto.HotelSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/trips/plan", httptransport.MakeHandlerFunc(
			endpts.PlannerEndpoint.PlanTrip,
			httptransport.DecodeRequest[dto.TripPlanRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
