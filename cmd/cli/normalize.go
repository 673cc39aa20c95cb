package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/googleflights"
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	otherFlags bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a saved flight search response without calling the provider",
	Long: `Reads either a full google_flights response (best_flights and
other_flights) or a bare array of offers, and prints the normalized offers.`,
	Example: `  travel-planner normalize --input response.json -f markdown
  cat offers.json | travel-planner normalize -f csv -o offers.csv`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&inputFile, "input", "i", "-", "JSON file to read, - for stdin")
	normalizeCmd.Flags().BoolVar(&otherFlags, "all", false, "include other_flights from a full response")
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	data, err := readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	raw, err := decodeOffers(data, otherFlags)
	if err != nil {
		return err
	}

	resp := dto.NewFlightSearchResponse(dto.FlightSearchRequest{}, offer.Normalize(raw))

	return withOutput(func(w io.Writer) error {
		return writeOffers(w, format, resp)
	})
}

func readInput(stdin io.Reader) ([]byte, error) {
	if inputFile == "" || inputFile == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(inputFile)
}

// decodeOffers accepts a bare offer array or a full provider response.
func decodeOffers(data []byte, includeOther bool) ([]offer.RawOffer, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var raw []offer.RawOffer
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode offers: %w", err)
		}

		return raw, nil
	}

	var response googleflights.SearchFlightResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("decode flight search response: %w", err)
	}

	raw := append([]offer.RawOffer{}, response.BestFlights...)
	if includeOther {
		raw = append(raw, response.OtherFlights...)
	}

	return raw, nil
}
