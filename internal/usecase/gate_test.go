//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/pkg/metrics"
	"riad-booking/internal/usecase"
	"riad-booking/tests/common/builder"
	usecasemock "riad-booking/tests/mock/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGate_Check(t *testing.T) {
	testCases := []struct {
		name      string
		criteria  booking.Criteria
		setup     func(m *usecasemock.MockAvailabilityService)
		errIs     []error
		errNotIs  []error
		outcome   string
		wantError bool
	}{
		{
			name:     "available",
			criteria: builder.NewCriteriaBuilder().BuildDomain(),
			setup: func(m *usecasemock.MockAvailabilityService) {
				m.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			outcome: metrics.OutcomeAvailable,
		},
		{
			name:     "room taken",
			criteria: builder.NewCriteriaBuilder().BuildDomain(),
			setup: func(m *usecasemock.MockAvailabilityService) {
				m.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			errIs:     []error{usecase.ErrRoomUnavailable},
			errNotIs:  []error{usecase.ErrAvailabilityServiceUnavailable},
			outcome:   metrics.OutcomeOccupied,
			wantError: true,
		},
		{
			name:     "service failure",
			criteria: builder.NewCriteriaBuilder().BuildDomain(),
			setup: func(m *usecasemock.MockAvailabilityService) {
				m.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			errIs:     []error{usecase.ErrAvailabilityServiceUnavailable},
			errNotIs:  []error{usecase.ErrRoomUnavailable},
			outcome:   metrics.OutcomeFailed,
			wantError: true,
		},
		{
			name: "inverted dates never reach the service",
			criteria: builder.NewCriteriaBuilder().With(func(b *builder.CriteriaBuilder) {
				b.CheckIn, b.CheckOut = "2024-03-04", "2024-03-01"
			}).BuildDomain(),
			setup:     func(*usecasemock.MockAvailabilityService) {},
			errIs:     []error{booking.ErrInvalidDateRange, errs.ErrValidation},
			outcome:   metrics.OutcomeInvalid,
			wantError: true,
		},
		{
			name:      "missing dates never reach the service",
			criteria:  booking.Criteria{RoomID: "r1", AdultsCount: 1},
			setup:     func(*usecasemock.MockAvailabilityService) {},
			errIs:     []error{booking.ErrMissingDates, errs.ErrValidation},
			outcome:   metrics.OutcomeInvalid,
			wantError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			availability := usecasemock.NewMockAvailabilityService(ctrl)
			tc.setup(availability)
			m := metrics.New()

			err := usecase.NewGate(availability, m, discardLogger()).Check(context.Background(), tc.criteria)

			if !tc.wantError {
				assert.NoError(t, err)
			}
			for _, target := range tc.errIs {
				assert.ErrorIs(t, err, target)
			}
			for _, target := range tc.errNotIs {
				assert.NotErrorIs(t, err, target)
			}
			assert.InDelta(t, 1, testutil.ToFloat64(m.Availability.WithLabelValues(tc.outcome)), 0)
		})
	}
}
