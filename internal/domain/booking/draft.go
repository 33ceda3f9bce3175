package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrMissingGuestName = errors.New("guest first and last name are required")
	ErrInvalidEmail     = errors.New("a valid guest email is required")
	ErrSpecialRequests  = errors.New("special requests are too long")
)

const MaxSpecialRequestsLength = 2000

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Status string

const (
	StatusPending Status = "pending"
)

func (s Status) String() string {
	return string(s)
}

type GuestContact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func NewGuestContact(firstName, lastName, email, phone string) (GuestContact, error) {
	g := GuestContact{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
	}
	if g.FirstName == "" || g.LastName == "" {
		return GuestContact{}, ErrMissingGuestName
	}
	if !emailRegex.MatchString(g.Email) {
		return GuestContact{}, ErrInvalidEmail
	}
	return g, nil
}

// ReservationDraft is sent once to the reservation API.
type ReservationDraft struct {
	Guest           GuestContact
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	AdultsCount     int
	ChildrenCount   int
	Total           Money
	Paid            Money
	Status          Status
	SpecialRequests string
}

// NewReservationDraft takes its total from the authoritative quote only.
func NewReservationDraft(c Criteria, guest GuestContact, quote PriceQuote, specialRequests string) (ReservationDraft, error) {
	if err := ValidateSpecialRequests(specialRequests); err != nil {
		return ReservationDraft{}, err
	}

	return ReservationDraft{
		Guest:           guest,
		RoomID:          c.RoomID,
		CheckIn:         c.CheckIn,
		CheckOut:        c.CheckOut,
		AdultsCount:     c.AdultsCount,
		ChildrenCount:   c.ChildrenCount,
		Total:           quote.Total(),
		Paid:            NewMoney(0),
		Status:          StatusPending,
		SpecialRequests: strings.TrimSpace(specialRequests),
	}, nil
}

func ValidateSpecialRequests(s string) error {
	if len(strings.TrimSpace(s)) > MaxSpecialRequestsLength {
		return ErrSpecialRequests
	}
	return nil
}
