package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/spf13/cobra"
)

var tripReq dto.TripPlanRequest

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trip: hotels, optional flights and an itinerary",
	Example: `  travel-planner plan --destination Tokyo --check-in 2025-06-01 --check-out 2025-06-04
  travel-planner plan --destination Tokyo --from SIN --to HND --check-in 2025-06-01 --check-out 2025-06-04 -f json`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&tripReq.Destination, "destination", "", "destination city")
	planCmd.Flags().StringVar(&tripReq.OriginAirport, "from", "", "departure airport code, enables flight search")
	planCmd.Flags().StringVar(&tripReq.DestinationAirport, "to", "", "arrival airport code")
	planCmd.Flags().StringVar(&tripReq.CheckInDate, "check-in", "", "check-in date (YYYY-MM-DD)")
	planCmd.Flags().StringVar(&tripReq.CheckOutDate, "check-out", "", "check-out date (YYYY-MM-DD)")
	planCmd.Flags().StringVar(&tripReq.Currency, "currency", "", "price currency, defaults to SERPAPI_CURRENCY")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	if err := tripReq.Validate(); err != nil {
		return err
	}

	svc, err := newService(cmd.Context(), true)
	if err != nil {
		return err
	}

	plan, err := svc.PlanTrip(cmd.Context(), tripReq)
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		if format == formatJSON {
			return writeJSON(w, plan)
		}

		return writeMarkdown(w, planMarkdown(plan))
	})
}

// planMarkdown lays the plan out as one markdown document.
func planMarkdown(plan dto.TripPlan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Trip to %s (%d days)\n\n", plan.SearchCriteria.Destination, plan.Days)

	if plan.Flights != nil {
		sb.WriteString("## Flights\n\n")

		offers := plan.Flights.NormalizedOffers()
		if len(offers) == 0 {
			sb.WriteString("No flight offers found.\n\n")
		}

		for _, o := range offers {
			sb.WriteString("```\n")
			sb.WriteString(offer.Markdown(o))
			sb.WriteString("```\n\n")
		}
	}

	sb.WriteString("## Hotels\n\n")

	if len(plan.Hotels) == 0 {
		sb.WriteString("No hotels found.\n\n")
	}

	for _, h := range plan.Hotels {
		fmt.Fprintf(&sb, "- **%s** %s, rating %s (%s reviews)\n", h.Name, h.Price, h.Rating, h.Reviews)
	}

	if plan.HotelRecommendation != "" {
		sb.WriteString("\n## Recommendation\n\n")
		sb.WriteString(plan.HotelRecommendation)
		sb.WriteString("\n")
	}

	if plan.Itinerary != "" {
		sb.WriteString("\n## Itinerary\n\n")
		sb.WriteString(plan.Itinerary)
		sb.WriteString("\n")
	}

	return sb.String()
}
