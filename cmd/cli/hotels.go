package main

import (
	"io"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/spf13/cobra"
)

var hotelsReq dto.HotelSearchRequest

var hotelsCmd = &cobra.Command{
	Use:     "hotels",
	Short:   "Search hotels for a stay",
	Example: `  travel-planner hotels --location Tokyo --check-in 2025-06-01 --check-out 2025-06-04`,
	RunE:    runHotels,
}

func init() {
	hotelsCmd.Flags().StringVar(&hotelsReq.Location, "location", "", "city or area to search")
	hotelsCmd.Flags().StringVar(&hotelsReq.CheckInDate, "check-in", "", "check-in date (YYYY-MM-DD)")
	hotelsCmd.Flags().StringVar(&hotelsReq.CheckOutDate, "check-out", "", "check-out date (YYYY-MM-DD)")
	hotelsCmd.Flags().StringVar(&hotelsReq.Currency, "currency", "", "price currency, defaults to SERPAPI_CURRENCY")
}

func runHotels(cmd *cobra.Command, _ []string) error {
	if err := hotelsReq.Validate(); err != nil {
		return err
	}

	svc, err := newService(cmd.Context(), false)
	if err != nil {
		return err
	}

	resp, err := svc.SearchHotels(cmd.Context(), hotelsReq)
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		return writeHotels(w, format, resp)
	})
}
