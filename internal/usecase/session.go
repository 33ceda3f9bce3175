package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/reqctx"
)

// Session is the server side of one booking widget. Two sessions never
// share state.
type Session struct {
	id        string
	rooms     booking.Catalog
	rules     booking.DiscountRules
	estimator *Estimator
	gate      *Gate
	workflow  *Workflow

	mu       sync.Mutex
	criteria booking.Criteria
	state    booking.State
	lastSeen time.Time
}

// Summary is what a widget renders.
type Summary struct {
	SessionID string
	Rooms     booking.Catalog
	Criteria  booking.Criteria
	Room      *booking.Room
	Quote     *booking.PriceQuote
	Estimate  *booking.Estimate
	State     booking.State
}

type Confirmation struct {
	Reference string
	Summary   Summary
}

type SubmitInput struct {
	Guest           booking.GuestContact
	SpecialRequests string
}

func (s *Session) ID() string { return s.id }

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Session) summaryLocked() Summary {
	room, _ := s.rooms.Find(s.criteria.RoomID)
	quote := s.estimator.Quote()

	sum := Summary{
		SessionID: s.id,
		Rooms:     s.rooms,
		Criteria:  s.criteria,
		Room:      room,
		Quote:     quote,
		State:     s.state,
	}
	if est, ok := s.rules.Overlay(quote, room, s.criteria); ok {
		sum.Estimate = &est
	}
	return sum
}

// UpdateCriteria applies the patch and refreshes the quote. When a newer
// update overtakes this one, the returned summary reflects whatever the
// newer update has stored so far. The form is locked while an availability
// check or a submission runs.
func (s *Session) UpdateCriteria(ctx context.Context, patch booking.CriteriaPatch) (Summary, error) {
	s.mu.Lock()
	if booking.InProgress(s.state) {
		s.mu.Unlock()
		return Summary{}, ErrOperationInProgress
	}
	next, err := s.criteria.Apply(patch)
	if err != nil {
		s.mu.Unlock()
		return Summary{}, err
	}
	if next.RoomID != "" {
		if _, ok := s.rooms.Find(next.RoomID); !ok {
			s.mu.Unlock()
			return Summary{}, booking.ErrUnknownRoom
		}
	}
	s.criteria = next
	s.state = booking.Idle{}
	// Issued under the lock so refresh order matches update order
	pending := s.estimator.Start(reqctx.WithSessionID(ctx, s.id), next)
	s.mu.Unlock()

	if _, err := pending.Wait(); err != nil && !errors.Is(err, ErrSuperseded) {
		return Summary{}, err
	}
	return s.Summary(), nil
}

// CheckAvailability runs only the gate. The on-page widget uses it before
// handing the prefilled criteria to the full booking form.
func (s *Session) CheckAvailability(ctx context.Context) (Summary, error) {
	criteria, err := s.begin(booking.CheckingAvailability{})
	if err != nil {
		return Summary{}, err
	}

	err = s.gate.Check(reqctx.WithSessionID(ctx, s.id), criteria)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = booking.Failed{Reason: err}
		return s.summaryLocked(), err
	}
	s.state = booking.Idle{}
	return s.summaryLocked(), nil
}

// Submit runs the whole reservation workflow on a snapshot of the criteria.
// Success resets the form to its defaults; failure keeps what the guest typed.
func (s *Session) Submit(ctx context.Context, in SubmitInput) (Confirmation, error) {
	criteria, err := s.begin(booking.Validating{})
	if err != nil {
		return Confirmation{}, err
	}

	req := SubmitRequest{
		Criteria:        criteria,
		Guest:           in.Guest,
		SpecialRequests: in.SpecialRequests,
	}
	reference, err := s.workflow.Run(reqctx.WithSessionID(ctx, s.id), req, s.setState)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return Confirmation{Summary: s.summaryLocked()}, err
	}

	s.criteria = booking.DefaultCriteria(s.rooms)
	s.estimator.Reset()
	return Confirmation{Reference: reference, Summary: s.summaryLocked()}, nil
}

func (s *Session) begin(initial booking.State) (booking.Criteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.InProgress(s.state) {
		return booking.Criteria{}, ErrOperationInProgress
	}
	s.state = initial
	return s.criteria, nil
}

func (s *Session) setState(state booking.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
