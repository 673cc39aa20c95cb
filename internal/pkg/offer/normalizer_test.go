package offer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOffers(t *testing.T, doc string) []RawOffer {
	t.Helper()

	var raw []RawOffer
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))

	return raw
}

func TestNormalize_Example(t *testing.T) {
	raw := decodeOffers(t, `[{
		"total_duration": 720,
		"carbon_emissions": {"this_flight": 1850},
		"price": 450,
		"flights": [{
			"airline": "ANA",
			"flight_number": "NH 1",
			"departure_airport": {"name": "PEK", "time": "09:00"},
			"arrival_airport": {"name": "NRT", "time": "14:00"},
			"duration": 300
		}]
	}]`)

	got := Normalize(raw)
	require.Len(t, got, 1)

	assert.Equal(t, "1.9", got[0].EmissionsKg.String())
	assert.Equal(t, "720", got[0].TotalDurationMinutes.String())
	assert.Equal(t, "450", got[0].Price.String())
	assert.Contains(t, got[0].ItineraryText, "ANA NH 1 (PEK ➡ NRT)")
	assert.Equal(t, "ANA NH 1 (PEK ➡ NRT)\n🕒 09:00 → 14:00 | 300 min", got[0].ItineraryText)

	want := []NormalizedLeg{{
		Airline:       "ANA",
		FlightNumber:  "NH 1",
		From:          "PEK",
		To:            "NRT",
		DepartureTime: "09:00",
		ArrivalTime:   "14:00",
		Duration:      "300",
		Aircraft:      NotAvailable,
		Class:         NotAvailable,
		Legroom:       NotAvailable,
	}}
	if diff := cmp.Diff(want, got[0].Legs); diff != "" {
		t.Fatalf("Normalize() legs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_Fields(t *testing.T) {
	normalizeRequest := func(doc string, check func(t *testing.T, got NormalizedOffer)) func(t *testing.T) {
		return func(t *testing.T) {
			got := Normalize(decodeOffers(t, doc))
			require.Len(t, got, 1)
			check(t, got[0])
		}
	}

	t.Run("complete_fields", normalizeRequest(`[{
		"total_duration": 95,
		"carbon_emissions": {"this_flight": 2350},
		"price": 120.5,
		"flights": [{
			"airline": "United", "flight_number": "UA 10",
			"departure_airport": {"name": "SFO", "time": "2025-06-01 08:00"},
			"arrival_airport": {"name": "LAX", "time": "2025-06-01 09:35"},
			"duration": 95, "airplane": "Boeing 737", "travel_class": "Economy", "legroom": "30 in"
		}]
	}]`, func(t *testing.T, got NormalizedOffer) {
		assert.Equal(t, "2.4", got.EmissionsKg.String())
		assert.Equal(t, "95", got.TotalDurationMinutes.String())
		assert.Equal(t, "120.5", got.Price.String())
		assert.Equal(t, "Boeing 737", got.Legs[0].Aircraft)
		assert.Equal(t, "Economy", got.Legs[0].Class)
		assert.Equal(t, "30 in", got.Legs[0].Legroom)
	}))

	t.Run("missing_carbon_emissions", normalizeRequest(`[{"total_duration": 60, "price": 10, "flights": []}]`,
		func(t *testing.T, got NormalizedOffer) {
			assert.Equal(t, NotAvailable, got.EmissionsKg.String())
			assert.False(t, got.EmissionsKg.Known())
		}))

	t.Run("zero_emissions_is_not_missing", normalizeRequest(`[{"carbon_emissions": {"this_flight": 0}}]`,
		func(t *testing.T, got NormalizedOffer) {
			assert.Equal(t, "0.0", got.EmissionsKg.String())
		}))

	t.Run("zero_legs_kept_with_empty_itinerary", normalizeRequest(`[{"total_duration": 60, "price": 10, "flights": []}]`,
		func(t *testing.T, got NormalizedOffer) {
			assert.Equal(t, "", got.ItineraryText)
			assert.Empty(t, got.Legs)
			assert.Equal(t, "10", got.Price.String())
		}))

	t.Run("empty_object", normalizeRequest(`[{}]`, func(t *testing.T, got NormalizedOffer) {
		assert.Equal(t, "", got.ItineraryText)
		assert.Equal(t, NotAvailable, got.TotalDurationMinutes.String())
		assert.Equal(t, NotAvailable, got.EmissionsKg.String())
		assert.Equal(t, NotAvailable, got.Price.String())
	}))

	t.Run("string_price_passthrough", normalizeRequest(`[{"price": "$1,204"}]`, func(t *testing.T, got NormalizedOffer) {
		assert.Equal(t, "$1,204", got.Price.String())
	}))

	t.Run("malformed_fields_degrade", normalizeRequest(`[{
		"total_duration": "long",
		"carbon_emissions": "lots",
		"price": {"amount": 1},
		"flights": {"airline": "ANA"}
	}]`, func(t *testing.T, got NormalizedOffer) {
		assert.Equal(t, NotAvailable, got.TotalDurationMinutes.String())
		assert.Equal(t, NotAvailable, got.EmissionsKg.String())
		assert.Equal(t, NotAvailable, got.Price.String())
		assert.Equal(t, "", got.ItineraryText)
	}))

	t.Run("missing_leg_fields_fall_back", normalizeRequest(`[{"flights": [{}, "not-a-leg"]}]`,
		func(t *testing.T, got NormalizedOffer) {
			line := "Unknown Airline N/A (Unknown Departure ➡ Unknown Arrival)\n🕒 N/A → N/A | N/A min"
			assert.Equal(t, line+"\n\n"+line, got.ItineraryText)
			assert.Len(t, got.Legs, 2)
		}))

	t.Run("partial_airport", normalizeRequest(`[{"flights": [{"airline": "JAL", "departure_airport": {"time": "10:00"}, "arrival_airport": null}]}]`,
		func(t *testing.T, got NormalizedOffer) {
			assert.Equal(t, "JAL N/A (Unknown Departure ➡ Unknown Arrival)\n🕒 10:00 → N/A | N/A min", got.ItineraryText)
		}))
}

func TestNormalize_EmptyInput(t *testing.T) {
	got := Normalize([]RawOffer{})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalize_PreservesOrder(t *testing.T) {
	raw := decodeOffers(t, `[
		{"price": 300, "flights": [{"airline": "A"}]},
		{"price": 100, "flights": []},
		{"flights": [{"airline": "C"}, {"airline": "D"}]},
		{"price": 200}
	]`)

	got := Normalize(raw)
	require.Len(t, got, len(raw))

	gotPrices := make([]string, len(got))
	for i, o := range got {
		gotPrices[i] = o.Price.String()
	}

	if diff := cmp.Diff([]string{"300", "100", "N/A", "200"}, gotPrices); diff != "" {
		t.Fatalf("Normalize() order mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, got[0].ItineraryText, "A N/A")
	assert.Contains(t, got[2].ItineraryText, "C N/A")
	assert.Contains(t, got[2].ItineraryText, "D N/A")
}

func TestRawOffer_TopLevelShape(t *testing.T) {
	var raw []RawOffer

	err := json.Unmarshal([]byte(`[{"price": 1}, 42]`), &raw)
	assert.ErrorIs(t, err, ErrOfferNotObject)

	err = json.Unmarshal([]byte(`{"price": 1}`), &raw)
	assert.Error(t, err)
}

func TestRawOffer_CacheRoundTrip(t *testing.T) {
	raw := decodeOffers(t, `[{"total_duration": 720, "carbon_emissions": {"this_flight": 1850}, "price": "450",
		"flights": [{"airline": "ANA", "departure_airport": {"name": "PEK"}}]}]`)

	data, err := json.Marshal(raw)
	require.NoError(t, err)

	again := decodeOffers(t, string(data))
	assert.Equal(t, Normalize(raw), Normalize(again))
}

func TestValue_JSON(t *testing.T) {
	data, err := json.Marshal(NormalizedOffer{
		TotalDurationMinutes: Number("720"),
		EmissionsKg:          Number("2.0"),
		Price:                Unknown(),
		Legs:                 []NormalizedLeg{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"itinerary_text":"","total_duration_minutes":720,"emissions_kg":2.0,"price":"N/A","legs":[]}`, string(data))

	var got NormalizedOffer
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2.0", got.EmissionsKg.String())
	assert.False(t, got.Price.Known())
}
