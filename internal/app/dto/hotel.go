package dto

import (
	"fmt"
	"net/http"
	"time"
)

type HotelSearchRequest struct {
	Location     string `json:"location" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Currency     string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

func (h *HotelSearchRequest) Bind(r *http.Request) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (h *HotelSearchRequest) Validate() error {
	if err := ValidateSingleError(h); err != nil {
		return badRequest(err.Error())
	}

	return validateStay(h.CheckInDate, h.CheckOutDate)
}

func validateStay(checkIn, checkOut string) error {
	in, _ := time.Parse(DateLayout, checkIn)
	out, _ := time.Parse(DateLayout, checkOut)

	if !out.After(in) {
		return badRequest("check_out_date must be after check_in_date")
	}

	return nil
}

// Hotel is a normalized hotel listing. Missing fields hold "N/A".
type Hotel struct {
	Name    string `json:"name"`
	Price   string `json:"price"`
	Rating  string `json:"rating"`
	Reviews string `json:"reviews"`
	Link    string `json:"link"`
}

type HotelSearchResponse struct {
	SearchCriteria HotelSearchRequest `json:"search_criteria"`
	Hotels         []Hotel            `json:"hotels"`
}
