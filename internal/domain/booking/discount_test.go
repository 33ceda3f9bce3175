//go:build unit

package booking_test

import (
	"testing"

	"riad-booking/internal/domain/booking"
	"riad-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay(t *testing.T) {
	rules := booking.DefaultDiscountRules()
	room := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.BasePricePerNight = 100 }).BuildDomain()

	testCases := []struct {
		name         string
		nights       int
		promo        string
		quote        *booking.PriceQuote
		wantTotal    int64
		wantLongStay bool
		wantPromo    bool
		wantFallback bool
	}{
		{
			name:         "long stay and promo stack multiplicatively",
			nights:       7,
			promo:        "RIAD10",
			wantTotal:    567,
			wantLongStay: true,
			wantPromo:    true,
			wantFallback: true,
		},
		{
			name:         "six nights without promo is not discounted",
			nights:       6,
			wantTotal:    600,
			wantFallback: true,
		},
		{
			name:         "promo code is case-insensitive",
			nights:       2,
			promo:        "riad10",
			wantTotal:    180,
			wantPromo:    true,
			wantFallback: true,
		},
		{
			name:         "unknown promo code is ignored",
			nights:       2,
			promo:        "SUMMER",
			wantTotal:    200,
			wantFallback: true,
		},
		{
			name:         "long stay threshold is inclusive",
			nights:       7,
			wantTotal:    630,
			wantLongStay: true,
			wantFallback: true,
		},
		{
			name:      "server quote replaces the nightly estimate",
			nights:    3,
			quote:     quotePtr(builder.MustQuote(540, 3)),
			wantTotal: 540,
		},
		{
			name:         "server quote nights drive the long-stay rule",
			nights:       3,
			promo:        "RIAD10",
			quote:        quotePtr(builder.MustQuote(700, 7)),
			wantTotal:    567,
			wantLongStay: true,
			wantPromo:    true,
		},
		{
			name:      "display total is rounded",
			nights:    1,
			promo:     "RIAD10",
			quote:     quotePtr(builder.MustQuote(99.95, 1)),
			wantTotal: 90,
			wantPromo: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			criteria := builder.NewCriteriaBuilder().
				With(func(b *builder.CriteriaBuilder) { b.PromoCode = tc.promo }).
				WithNights(tc.nights).
				BuildDomain()

			est, ok := rules.Overlay(tc.quote, room, criteria)
			require.True(t, ok)

			assert.Equal(t, tc.wantTotal, est.DisplayTotal)
			assert.Equal(t, tc.wantLongStay, est.LongStayApplied)
			assert.Equal(t, tc.wantPromo, est.PromoApplied)
			assert.Equal(t, tc.wantFallback, est.Fallback)
		})
	}

	t.Run("no estimate without dates or quote", func(t *testing.T) {
		criteria := builder.NewCriteriaBuilder().
			With(func(b *builder.CriteriaBuilder) { b.CheckOut = b.CheckIn }).
			BuildDomain()

		_, ok := rules.Overlay(nil, room, criteria)
		assert.False(t, ok)

		_, ok = rules.Overlay(nil, nil, builder.NewCriteriaBuilder().BuildDomain())
		assert.False(t, ok)
	})
}

func TestNewPercentageDiscount(t *testing.T) {
	for _, pct := range []float64{0, 10, 100} {
		d, err := booking.NewPercentageDiscount(pct)
		require.NoError(t, err)
		assert.InDelta(t, pct, d.PercentOff(), 0.0001)
	}
	for _, pct := range []float64{-1, 100.5} {
		_, err := booking.NewPercentageDiscount(pct)
		assert.ErrorIs(t, err, booking.ErrInvalidDiscountPercent)
	}
}

func TestPromoMatches(t *testing.T) {
	rules := booking.DefaultDiscountRules()

	assert.True(t, rules.PromoMatches("RIAD10"))
	assert.True(t, rules.PromoMatches(" Riad10 "))
	assert.False(t, rules.PromoMatches(""))
	assert.False(t, rules.PromoMatches("RIAD1"))

	rules.PromoCode = ""
	assert.False(t, rules.PromoMatches(""))
}

func quotePtr(q booking.PriceQuote) *booking.PriceQuote {
	return &q
}
