package booking

import (
	"errors"
	"math"
	"strings"
)

var ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")

type Discount struct {
	percentOff float64
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) PercentOff() float64 {
	return d.percentOff
}

func (d Discount) apply(amount float64) float64 {
	return amount * (100.0 - d.percentOff) / 100.0
}

// DiscountRules are the display-only rules layered over a quote.
type DiscountRules struct {
	LongStayNights int
	LongStay       Discount
	PromoCode      string
	Promo          Discount
}

func DefaultDiscountRules() DiscountRules {
	return DiscountRules{
		LongStayNights: 7,
		LongStay:       Discount{percentOff: 10},
		PromoCode:      "RIAD10",
		Promo:          Discount{percentOff: 10},
	}
}

func (r DiscountRules) PromoMatches(code string) bool {
	code = strings.TrimSpace(code)
	return code != "" && r.PromoCode != "" && strings.EqualFold(code, r.PromoCode)
}

// Estimate is what a widget shows before or alongside the server quote.
// It is advisory and never sent upstream.
type Estimate struct {
	Base            Money
	Nights          int
	Fallback        bool
	LongStayApplied bool
	PromoApplied    bool
	DisplayTotal    int64
}

// Overlay prices the criteria from the server quote when one is known and
// from nights x nightly rate otherwise. ok is false when neither is possible.
func (r DiscountRules) Overlay(quote *PriceQuote, room *Room, c Criteria) (Estimate, bool) {
	var est Estimate
	switch {
	case quote != nil:
		est.Base = quote.Total()
		est.Nights = quote.Nights()
	case room != nil && c.Nights() > 0:
		est.Nights = c.Nights()
		est.Base = room.BasePricePerNight().Times(est.Nights)
		est.Fallback = true
	default:
		return Estimate{}, false
	}

	total := float64(est.Base.Cents())
	if r.LongStayNights > 0 && est.Nights >= r.LongStayNights {
		total = r.LongStay.apply(total)
		est.LongStayApplied = true
	}
	if r.PromoMatches(c.PromoCode) {
		total = r.Promo.apply(total)
		est.PromoApplied = true
	}
	est.DisplayTotal = int64(math.Round(total / 100.0))

	return est, true
}
