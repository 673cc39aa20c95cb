package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
)

var errInvalidType = errors.New("invalid type")

type PlannerService interface {
	SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightSearchResponse, error)
	SearchHotels(ctx context.Context, req dto.HotelSearchRequest) (dto.HotelSearchResponse, error)
	PlanTrip(ctx context.Context, req dto.TripPlanRequest) (dto.TripPlan, error)
}

type PlannerEndpoint struct {
	SearchFlights endpoint.Endpoint
	SearchHotels  endpoint.Endpoint
	PlanTrip      endpoint.Endpoint
}

func MakePlannerEndpoint(service PlannerService) PlannerEndpoint {
	return PlannerEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service),
		SearchHotels:  makeSearchHotelsEndpoint(service),
		PlanTrip:      makePlanTripEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightSearchRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return flights, nil
	}
}

func makeSearchHotelsEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.HotelSearchRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		hotels, err := service.SearchHotels(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return hotels, nil
	}
}

func makePlanTripEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TripPlanRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		plan, err := service.PlanTrip(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return plan, nil
	}
}
