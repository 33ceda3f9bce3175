package booking

import "errors"

var ErrInvalidQuote = errors.New("price quote must cover at least one night")

// PriceQuote is the pricing API's answer for one set of criteria.
type PriceQuote struct {
	total  Money
	nights int
}

func NewPriceQuote(total Money, nights int) (PriceQuote, error) {
	if nights <= 0 {
		return PriceQuote{}, ErrInvalidQuote
	}
	return PriceQuote{total: total, nights: nights}, nil
}

func (q PriceQuote) Total() Money { return q.total }
func (q PriceQuote) Nights() int  { return q.nights }
