package usecase

import (
	"context"
	"log/slog"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/pkg/metrics"
)

var (
	ErrRoomUnavailable                = errs.New("room not available")
	ErrAvailabilityServiceUnavailable = errs.New("verification service unavailable")
)

// Gate asks the booking API whether the criteria can still be booked.
type Gate struct {
	availability AvailabilityService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

func NewGate(availability AvailabilityService, m *metrics.Metrics, logger *slog.Logger) *Gate {
	return &Gate{
		availability: availability,
		metrics:      m,
		logger:       logger,
	}
}

// Check returns nil only for a positive answer. Local precondition failures
// are marked errs.ErrValidation and never reach the network. Service
// failures are reported apart from a legitimately unavailable room.
func (g *Gate) Check(ctx context.Context, criteria booking.Criteria) error {
	if err := criteria.ValidateForSubmission(); err != nil {
		g.observe(metrics.OutcomeInvalid)
		return errs.Mark(err, errs.ErrValidation)
	}

	available, err := g.availability.CheckAvailability(ctx, criteria)
	if err != nil {
		g.observe(metrics.OutcomeFailed)
		g.logger.Error("Availability check failed",
			"room_id", criteria.RoomID,
			"check_in", booking.FormatDate(criteria.CheckIn),
			"check_out", booking.FormatDate(criteria.CheckOut),
			"error", err.Error())
		return errs.Mark(errs.Wrap(err, "check availability"), ErrAvailabilityServiceUnavailable)
	}
	if !available {
		g.observe(metrics.OutcomeOccupied)
		return ErrRoomUnavailable
	}

	g.observe(metrics.OutcomeAvailable)
	return nil
}

func (g *Gate) observe(outcome string) {
	if g.metrics != nil {
		g.metrics.Availability.WithLabelValues(outcome).Inc()
	}
}
