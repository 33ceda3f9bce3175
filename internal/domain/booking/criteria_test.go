//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/patch"
	"riad-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCriteria(t *testing.T) {
	t.Run("first room is selected", func(t *testing.T) {
		c := booking.DefaultCriteria(builder.DefaultCatalog())

		want := booking.Criteria{RoomID: "r1", AdultsCount: 1}
		if diff := cmp.Diff(want, c); diff != "" {
			t.Errorf("DefaultCriteria() mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, c.Quotable())
	})

	t.Run("empty catalog leaves room unset", func(t *testing.T) {
		c := booking.DefaultCriteria(nil)
		assert.Empty(t, c.RoomID)
	})
}

func TestCriteriaApply(t *testing.T) {
	base := builder.NewCriteriaBuilder().BuildDomain()

	t.Run("omitted fields keep prior values", func(t *testing.T) {
		next, err := base.Apply(booking.CriteriaPatch{PromoCode: patch.Ptr(" riad10 ")})
		require.NoError(t, err)

		assert.Equal(t, "riad10", next.PromoCode)
		assert.Equal(t, base.AdultsCount, next.AdultsCount)
		assert.Equal(t, base.ChildrenCount, next.ChildrenCount)
		assert.True(t, base.CheckIn.Equal(next.CheckIn))
	})

	t.Run("dates can be cleared", func(t *testing.T) {
		next, err := base.Apply(booking.CriteriaPatch{CheckOut: patch.Ptr(time.Time{})})
		require.NoError(t, err)
		assert.False(t, next.HasDates())
		assert.Equal(t, 0, next.Nights())
	})

	testCases := []struct {
		name  string
		patch booking.CriteriaPatch
		errIs error
	}{
		{name: "zero adults", patch: booking.CriteriaPatch{AdultsCount: patch.Ptr(0)}, errIs: booking.ErrInvalidAdults},
		{name: "negative children", patch: booking.CriteriaPatch{ChildrenCount: patch.Ptr(-1)}, errIs: booking.ErrInvalidChildren},
		{name: "promo too long", patch: booking.CriteriaPatch{PromoCode: patch.Ptr(strings.Repeat("X", booking.MaxPromoCodeLength+1))}, errIs: booking.ErrPromoCodeTooLong},
		{name: "promo at max length", patch: booking.CriteriaPatch{PromoCode: patch.Ptr(strings.Repeat("X", booking.MaxPromoCodeLength))}},
		{name: "children allowed", patch: booking.CriteriaPatch{ChildrenCount: patch.Ptr(2)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := base.Apply(tc.patch)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, base, next)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCriteriaValidateForSubmission(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*builder.CriteriaBuilder)
		errIs  error
	}{
		{name: "valid three night stay", mutate: func(*builder.CriteriaBuilder) {}},
		{name: "missing check-in", mutate: func(b *builder.CriteriaBuilder) { b.CheckIn = "" }, errIs: booking.ErrMissingDates},
		{name: "missing check-out", mutate: func(b *builder.CriteriaBuilder) { b.CheckOut = "" }, errIs: booking.ErrMissingDates},
		{name: "missing room", mutate: func(b *builder.CriteriaBuilder) { b.RoomID = "" }, errIs: booking.ErrMissingRoom},
		{name: "check-out equal to check-in", mutate: func(b *builder.CriteriaBuilder) { b.CheckOut = b.CheckIn }, errIs: booking.ErrInvalidDateRange},
		{name: "check-out before check-in", mutate: func(b *builder.CriteriaBuilder) { b.CheckOut = "2024-02-28" }, errIs: booking.ErrInvalidDateRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCriteriaBuilder().With(tc.mutate)
			c := booking.Criteria{
				RoomID:      b.RoomID,
				AdultsCount: b.AdultsCount,
			}
			c.CheckIn, _ = booking.ParseDate(b.CheckIn)
			c.CheckOut, _ = booking.ParseDate(b.CheckOut)

			err := c.ValidateForSubmission()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCriteriaNights(t *testing.T) {
	assert.Equal(t, 3, builder.NewCriteriaBuilder().BuildDomain().Nights())
	assert.Equal(t, 7, builder.NewCriteriaBuilder().WithNights(7).BuildDomain().Nights())
	assert.Equal(t, 0, builder.NewCriteriaBuilder().WithNights(-2).BuildDomain().Nights())
	assert.Equal(t, 2, builder.NewCriteriaBuilder().BuildDomain().GuestCount())
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", booking.FormatDate(d))

	d, err = booking.ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Empty(t, booking.FormatDate(d))

	for _, bad := range []string{"01/03/2024", "2024-13-01", "2024-03-01T10:00:00Z"} {
		_, err := booking.ParseDate(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidDate, bad)
	}
}
