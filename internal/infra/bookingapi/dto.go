package bookingapi

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexibleID accepts both string and numeric ids from the catalog.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

type roomDTO struct {
	ID        flexibleID `json:"id"`
	Name      string     `json:"name"`
	BasePrice float64    `json:"base_price"`
	MaxGuests int        `json:"max_guests"`
}

type pricingRequest struct {
	RoomID        string `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	AdultsCount   int    `json:"adults_count"`
	ChildrenCount int    `json:"children_count"`
}

type pricingResponse struct {
	TotalPrice *float64 `json:"total_price"`
	Nights     *int     `json:"nights"`
}

type availabilityRequest struct {
	pricingRequest
	GuestCount int `json:"guest_count"`
}

type availabilityResponse struct {
	Available *bool  `json:"available"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

type reservationRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	RoomID          string  `json:"room_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	AdultsCount     int     `json:"adults_count"`
	ChildrenCount   int     `json:"children_count"`
	TotalAmount     float64 `json:"total_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
}

type reservationResponse struct {
	Reference string `json:"reference"`
	Error     string `json:"error,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorResponse) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
