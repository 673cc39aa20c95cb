package googlehotels

import (
	"encoding/json"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/optional"
)

// SearchHotelResponse holds listings under either key the google_hotels
// engine has used.
type SearchHotelResponse struct {
	Properties    []Property `json:"properties"`
	HotelsResults []Property `json:"hotels_results"`
}

type Property struct {
	Name          optional.String `json:"name"`
	Link          optional.String `json:"link"`
	Price         Rate            `json:"price"`
	RatePerNight  Rate            `json:"rate_per_night"`
	TotalRate     Rate            `json:"total_rate"`
	OverallRating optional.Scalar `json:"overall_rating"`
	Rating        optional.Scalar `json:"rating"`
	Reviews       optional.Scalar `json:"reviews"`
}

// Rate decodes to its zero value when the provider sends a non-object.
type Rate struct {
	Amount optional.Scalar `json:"amount"`
	Lowest optional.Scalar `json:"lowest"`
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	type rate Rate

	var decoded rate
	if err := json.Unmarshal(data, &decoded); err != nil {
		decoded = rate{}
	}

	*r = Rate(decoded)

	return nil
}

func (r Rate) value() optional.Scalar {
	if r.Amount.Valid() {
		return r.Amount
	}

	return r.Lowest
}

// Property decodes to its zero value when the provider sends a non-object,
// so one broken listing does not fail the search.
func (p *Property) UnmarshalJSON(data []byte) error {
	type property Property

	var decoded property
	if err := json.Unmarshal(data, &decoded); err != nil {
		decoded = property{}
	}

	*p = Property(decoded)

	return nil
}
