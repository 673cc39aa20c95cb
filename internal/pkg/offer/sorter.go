package offer

import (
	"sort"
)

const (
	SortByPrice     = "price"
	SortByDuration  = "duration"
	SortByEmissions = "emissions"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// AllowedSortField lists the fields SortOffers understands.
var AllowedSortField = map[string]bool{
	SortByPrice:     true,
	SortByDuration:  true,
	SortByEmissions: true,
}

// SortOffers sorts in place and returns offers. Ties keep provider order and
// offers whose field is not numeric always go last. An unknown field leaves
// the order untouched.
func SortOffers(offers []NormalizedOffer, field, order string) []NormalizedOffer {
	var key func(o NormalizedOffer) Value

	switch field {
	case SortByPrice:
		key = func(o NormalizedOffer) Value { return o.Price }
	case SortByDuration:
		key = func(o NormalizedOffer) Value { return o.TotalDurationMinutes }
	case SortByEmissions:
		key = func(o NormalizedOffer) Value { return o.EmissionsKg }
	default:
		return offers
	}

	sort.SliceStable(offers, func(i, j int) bool {
		a, okA := key(offers[i]).Float64()
		b, okB := key(offers[j]).Float64()

		if !okA || !okB {
			return okA && !okB
		}

		if order == OrderDesc {
			return a > b
		}

		return a < b
	})

	return offers
}
