//go:build unit || e2e

package builder

import (
	"time"

	"riad-booking/internal/domain/booking"
	reqdto "riad-booking/internal/handler/dto/request"
	"riad-booking/internal/usecase"
)

type RoomBuilder struct {
	ID                string
	Name              string
	BasePricePerNight float64
	MaxGuests         int
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                "r1",
		Name:              "Suite Majorelle",
		BasePricePerNight: 200,
		MaxGuests:         2,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *booking.Room {
	price, err := booking.NewMoneyFromAmount(b.BasePricePerNight)
	if err != nil {
		panic(err)
	}
	room, err := booking.NewRoom(b.ID, b.Name, price, b.MaxGuests)
	if err != nil {
		panic(err)
	}
	return room
}

// DefaultCatalog is two rooms, r1 at 200 per night first.
func DefaultCatalog() booking.Catalog {
	return booking.Catalog{
		NewRoomBuilder().BuildDomain(),
		NewRoomBuilder().With(func(b *RoomBuilder) {
			b.ID = "r2"
			b.Name = "Chambre Atlas"
			b.BasePricePerNight = 90
			b.MaxGuests = 3
		}).BuildDomain(),
	}
}

type CriteriaBuilder struct {
	RoomID        string
	CheckIn       string
	CheckOut      string
	AdultsCount   int
	ChildrenCount int
	PromoCode     string
}

// NewCriteriaBuilder is r1 for three nights from 2024-03-01.
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{
		RoomID:      "r1",
		CheckIn:     "2024-03-01",
		CheckOut:    "2024-03-04",
		AdultsCount: 2,
	}
}

func (b *CriteriaBuilder) With(mutate func(*CriteriaBuilder)) *CriteriaBuilder {
	mutate(b)
	return b
}

func (b *CriteriaBuilder) WithNights(n int) *CriteriaBuilder {
	b.CheckOut = MustDate(b.CheckIn).AddDate(0, 0, n).Format(booking.DateLayout)
	return b
}

func (b *CriteriaBuilder) BuildDomain() booking.Criteria {
	return booking.Criteria{
		RoomID:        b.RoomID,
		CheckIn:       MustDate(b.CheckIn),
		CheckOut:      MustDate(b.CheckOut),
		AdultsCount:   b.AdultsCount,
		ChildrenCount: b.ChildrenCount,
		PromoCode:     b.PromoCode,
	}
}

// BuildPatch sets every field, as a widget does on its first full edit.
func (b *CriteriaBuilder) BuildPatch() booking.CriteriaPatch {
	c := b.BuildDomain()
	return booking.CriteriaPatch{
		RoomID:        &c.RoomID,
		CheckIn:       &c.CheckIn,
		CheckOut:      &c.CheckOut,
		AdultsCount:   &c.AdultsCount,
		ChildrenCount: &c.ChildrenCount,
		PromoCode:     &c.PromoCode,
	}
}

func (b *CriteriaBuilder) BuildDTO() reqdto.UpdateCriteriaRequest {
	return reqdto.UpdateCriteriaRequest{
		RoomID:        &b.RoomID,
		CheckIn:       &b.CheckIn,
		CheckOut:      &b.CheckOut,
		AdultsCount:   &b.AdultsCount,
		ChildrenCount: &b.ChildrenCount,
		PromoCode:     &b.PromoCode,
	}
}

type GuestBuilder struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	SpecialRequests string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		FirstName: "Amina",
		LastName:  "Benali",
		Email:     "amina@example.com",
		Phone:     "+212600000000",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildDomain() booking.GuestContact {
	return booking.GuestContact{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
	}
}

func (b *GuestBuilder) BuildInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		Guest:           b.BuildDomain(),
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *GuestBuilder) BuildDTO() reqdto.SubmitReservationRequest {
	return reqdto.SubmitReservationRequest{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		SpecialRequests: b.SpecialRequests,
	}
}

func MustDate(value string) time.Time {
	t, err := time.Parse(booking.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func MustQuote(total float64, nights int) booking.PriceQuote {
	money, err := booking.NewMoneyFromAmount(total)
	if err != nil {
		panic(err)
	}
	quote, err := booking.NewPriceQuote(money, nights)
	if err != nil {
		panic(err)
	}
	return quote
}
