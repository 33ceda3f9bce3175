package booking

import (
	"errors"
	"strings"
	"time"

	"riad-booking/internal/pkg/patch"
)

const (
	DateLayout         = "2006-01-02"
	MaxPromoCodeLength = 32

	defaultAdultsCount   = 1
	defaultChildrenCount = 0
)

var (
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrMissingRoom      = errors.New("a room must be selected")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidDate      = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidAdults    = errors.New("at least one adult is required")
	ErrInvalidChildren  = errors.New("children count cannot be negative")
	ErrPromoCodeTooLong = errors.New("promo code is too long")
)

// Criteria is what the guest has typed into a booking widget so far.
// Date ordering is only enforced by ValidateForSubmission.
type Criteria struct {
	RoomID        string
	CheckIn       time.Time
	CheckOut      time.Time
	AdultsCount   int
	ChildrenCount int
	PromoCode     string
}

type CriteriaPatch struct {
	RoomID        *string
	CheckIn       *time.Time
	CheckOut      *time.Time
	AdultsCount   *int
	ChildrenCount *int
	PromoCode     *string
}

// DefaultCriteria selects the first catalog room and leaves dates empty.
func DefaultCriteria(rooms Catalog) Criteria {
	c := Criteria{
		AdultsCount:   defaultAdultsCount,
		ChildrenCount: defaultChildrenCount,
	}
	if first, ok := rooms.First(); ok {
		c.RoomID = first.ID()
	}
	return c
}

func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Apply returns a copy of c with the non-nil patch fields applied.
// Omitted guest counts keep their prior values.
func (c Criteria) Apply(p CriteriaPatch) (Criteria, error) {
	next := Criteria{
		RoomID:        strings.TrimSpace(patch.Coalesce(p.RoomID, c.RoomID)),
		CheckIn:       patch.Coalesce(p.CheckIn, c.CheckIn),
		CheckOut:      patch.Coalesce(p.CheckOut, c.CheckOut),
		AdultsCount:   patch.Coalesce(p.AdultsCount, c.AdultsCount),
		ChildrenCount: patch.Coalesce(p.ChildrenCount, c.ChildrenCount),
		PromoCode:     strings.TrimSpace(patch.Coalesce(p.PromoCode, c.PromoCode)),
	}

	if next.AdultsCount < 1 {
		return c, ErrInvalidAdults
	}
	if next.ChildrenCount < 0 {
		return c, ErrInvalidChildren
	}
	if len(next.PromoCode) > MaxPromoCodeLength {
		return c, ErrPromoCodeTooLong
	}

	return next, nil
}

func (c Criteria) HasDates() bool {
	return !c.CheckIn.IsZero() && !c.CheckOut.IsZero()
}

// Quotable reports whether the pricing API can be asked for a quote.
func (c Criteria) Quotable() bool {
	return c.RoomID != "" && c.HasDates()
}

// Nights is the locally derived stay length, 0 when unknown or non-positive.
func (c Criteria) Nights() int {
	if !c.HasDates() || !c.CheckOut.After(c.CheckIn) {
		return 0
	}
	return int(c.CheckOut.Sub(c.CheckIn).Hours() / 24)
}

func (c Criteria) GuestCount() int {
	return c.AdultsCount + c.ChildrenCount
}

func (c Criteria) ValidateForSubmission() error {
	if !c.HasDates() {
		return ErrMissingDates
	}
	if c.RoomID == "" {
		return ErrMissingRoom
	}
	if !c.CheckOut.After(c.CheckIn) {
		return ErrInvalidDateRange
	}
	return nil
}
