package main

import (
	"io"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/spf13/cobra"
)

var flightsReq dto.FlightSearchRequest

var (
	sortField string
	sortOrder string
)

var flightsCmd = &cobra.Command{
	Use:   "flights",
	Short: "Search live flight offers and print them",
	Example: `  travel-planner flights --from HND --to SIN --outbound 2025-06-01 --return 2025-06-08
  travel-planner flights --from CDG --to JFK --outbound 2025-07-01 -f csv -o offers.csv`,
	RunE: runFlights,
}

func init() {
	flightsCmd.Flags().StringVar(&flightsReq.Origin, "from", "", "departure airport code")
	flightsCmd.Flags().StringVar(&flightsReq.Destination, "to", "", "arrival airport code")
	flightsCmd.Flags().StringVar(&flightsReq.OutboundDate, "outbound", "", "outbound date (YYYY-MM-DD)")
	flightsCmd.Flags().StringVar(&flightsReq.ReturnDate, "return", "", "return date (YYYY-MM-DD), omit for one way")
	flightsCmd.Flags().StringVar(&flightsReq.Currency, "currency", "", "price currency, defaults to SERPAPI_CURRENCY")
	flightsCmd.Flags().BoolVar(&flightsReq.IncludeOtherFlights, "all", false, "include other flights besides the best ones")
	flightsCmd.Flags().StringVar(&sortField, "sort", "", "sort by price, duration or emissions")
	flightsCmd.Flags().StringVar(&sortOrder, "order", "", "asc or desc")
}

func runFlights(cmd *cobra.Command, _ []string) error {
	req := flightsReq
	if sortField != "" {
		req.SortOption = &dto.SortOption{Field: sortField, Order: sortOrder}
	}

	if err := req.Validate(); err != nil {
		return err
	}

	svc, err := newService(cmd.Context(), false)
	if err != nil {
		return err
	}

	resp, err := svc.SearchFlights(cmd.Context(), req)
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		return writeOffers(w, format, resp)
	})
}
