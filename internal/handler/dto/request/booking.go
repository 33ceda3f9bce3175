package request

import (
	"time"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/usecase"

	"github.com/jinzhu/copier"
)

// UpdateCriteriaRequest carries only the fields the guest touched. Dates
// use YYYY-MM-DD; an empty string clears the date.
type UpdateCriteriaRequest struct {
	RoomID        *string `json:"roomId" binding:"omitempty,max=64"`
	CheckIn       *string `json:"checkIn"`
	CheckOut      *string `json:"checkOut"`
	AdultsCount   *int    `json:"adultsCount" binding:"omitempty,min=1,max=20"`
	ChildrenCount *int    `json:"childrenCount" binding:"omitempty,min=0,max=20"`
	PromoCode     *string `json:"promoCode" binding:"omitempty,max=32"`
}

func (r UpdateCriteriaRequest) ToDomain() (booking.CriteriaPatch, error) {
	checkIn, err := parseOptionalDate(r.CheckIn)
	if err != nil {
		return booking.CriteriaPatch{}, err
	}
	checkOut, err := parseOptionalDate(r.CheckOut)
	if err != nil {
		return booking.CriteriaPatch{}, err
	}

	return booking.CriteriaPatch{
		RoomID:        r.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		AdultsCount:   r.AdultsCount,
		ChildrenCount: r.ChildrenCount,
		PromoCode:     r.PromoCode,
	}, nil
}

type SubmitReservationRequest struct {
	FirstName       string `json:"firstName" binding:"required,max=100"`
	LastName        string `json:"lastName" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,max=254"`
	Phone           string `json:"phone" binding:"max=40"`
	SpecialRequests string `json:"specialRequests"`
}

// ToInput leaves contact validation to the workflow so it happens in the
// Validating step.
func (r SubmitReservationRequest) ToInput() (usecase.SubmitInput, error) {
	var guest booking.GuestContact
	if err := copier.Copy(&guest, &r); err != nil {
		return usecase.SubmitInput{}, err
	}
	return usecase.SubmitInput{
		Guest:           guest,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := booking.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
