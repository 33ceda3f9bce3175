package usecase

import (
	"context"
	"errors"
	"log/slog"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/infra"
	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/pkg/metrics"
)

var (
	ErrPricingFailed       = errs.New("pricing service unavailable")
	ErrSubmissionFailed    = errs.New("reservation could not be created")
	ErrReservationRejected = errs.New("reservation rejected")
)

// RejectionError carries the booking API's own explanation for refusing a
// reservation so it can be shown verbatim.
type RejectionError struct {
	Message string
	cause   error
}

func (e *RejectionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrReservationRejected.Error()
}

func (e *RejectionError) Unwrap() error { return e.cause }

func (e *RejectionError) Is(target error) bool {
	return target == ErrReservationRejected
}

type SubmitRequest struct {
	Criteria        booking.Criteria
	Guest           booking.GuestContact
	SpecialRequests string
}

// Observer receives every workflow state in order.
type Observer func(booking.State)

// Workflow turns validated criteria into a reservation:
// validate, check availability, fetch the authoritative price, submit.
// Each step runs only after the previous one succeeded.
type Workflow struct {
	gate         *Gate
	pricing      PricingService
	reservations ReservationService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

func NewWorkflow(
	gate *Gate,
	pricing PricingService,
	reservations ReservationService,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Workflow {
	return &Workflow{
		gate:         gate,
		pricing:      pricing,
		reservations: reservations,
		metrics:      m,
		logger:       logger,
	}
}

func (w *Workflow) Run(ctx context.Context, req SubmitRequest, observe Observer) (string, error) {
	if observe == nil {
		observe = func(booking.State) {}
	}

	observe(booking.Validating{})
	guest, err := w.validate(req)
	if err != nil {
		return w.fail(observe, metrics.OutcomeInvalid, errs.Mark(err, errs.ErrValidation))
	}

	observe(booking.CheckingAvailability{})
	if err := w.gate.Check(ctx, req.Criteria); err != nil {
		outcome := metrics.OutcomeFailed
		if errors.Is(err, ErrRoomUnavailable) {
			outcome = metrics.OutcomeOccupied
		}
		return w.fail(observe, outcome, err)
	}

	// The overlay shown to the guest is never used here
	observe(booking.FetchingPrice{})
	quote, err := w.pricing.Quote(ctx, req.Criteria)
	if err != nil {
		return w.fail(observe, metrics.OutcomeFailed, errs.Mark(errs.Wrap(err, "fetch authoritative price"), ErrPricingFailed))
	}

	draft, err := booking.NewReservationDraft(req.Criteria, guest, quote, req.SpecialRequests)
	if err != nil {
		return w.fail(observe, metrics.OutcomeInvalid, errs.Mark(err, errs.ErrValidation))
	}

	observe(booking.Submitting{Total: draft.Total})
	reference, err := w.reservations.CreateReservation(ctx, draft)
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			return w.fail(observe, metrics.OutcomeRejected, &RejectionError{Message: infra.ServerMessage(err), cause: err})
		}
		return w.fail(observe, metrics.OutcomeFailed, errs.Mark(errs.Wrap(err, "create reservation"), ErrSubmissionFailed))
	}

	w.logger.Info("Reservation created",
		"reference", reference,
		"room_id", draft.RoomID,
		"check_in", booking.FormatDate(draft.CheckIn),
		"check_out", booking.FormatDate(draft.CheckOut),
		"total_cents", draft.Total.Cents())
	w.observe(metrics.OutcomeOK)
	observe(booking.Succeeded{Reference: reference})
	return reference, nil
}

func (w *Workflow) validate(req SubmitRequest) (booking.GuestContact, error) {
	if err := req.Criteria.ValidateForSubmission(); err != nil {
		return booking.GuestContact{}, err
	}
	if err := booking.ValidateSpecialRequests(req.SpecialRequests); err != nil {
		return booking.GuestContact{}, err
	}
	return booking.NewGuestContact(req.Guest.FirstName, req.Guest.LastName, req.Guest.Email, req.Guest.Phone)
}

func (w *Workflow) fail(observe Observer, outcome string, err error) (string, error) {
	w.observe(outcome)
	observe(booking.Failed{Reason: err})
	return "", err
}

func (w *Workflow) observe(outcome string) {
	if w.metrics != nil {
		w.metrics.Submissions.WithLabelValues(outcome).Inc()
	}
}
