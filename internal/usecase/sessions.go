package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errs.New("booking session not found")
	ErrOperationInProgress = errs.New("another booking operation is in progress")
	ErrCatalogUnavailable  = errs.New("room catalog unavailable")
)

//go:generate mockgen -source=sessions.go -destination=../../tests/mock/usecase/sessions.go -package=usecasemock

type SessionManager interface {
	Rooms(ctx context.Context) (booking.Catalog, error)
	Open(ctx context.Context) (Summary, error)
	Summary(id string) (Summary, error)
	UpdateCriteria(ctx context.Context, id string, patch booking.CriteriaPatch) (Summary, error)
	CheckAvailability(ctx context.Context, id string) (Summary, error)
	Submit(ctx context.Context, id string, in SubmitInput) (Confirmation, error)
}

type SessionsOptions struct {
	Rules   booking.DiscountRules
	IdleTTL time.Duration
}

// Sessions owns every open booking session.
type Sessions struct {
	catalog  RoomCatalog
	pricing  PricingService
	gate     *Gate
	workflow *Workflow
	rules    booking.DiscountRules
	idleTTL  time.Duration
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions(
	catalog RoomCatalog,
	pricing PricingService,
	gate *Gate,
	workflow *Workflow,
	opts SessionsOptions,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Sessions {
	return &Sessions{
		catalog:  catalog,
		pricing:  pricing,
		gate:     gate,
		workflow: workflow,
		rules:    opts.Rules,
		idleTTL:  opts.IdleTTL,
		clock:    clk,
		metrics:  m,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

func (s *Sessions) Rooms(ctx context.Context) (booking.Catalog, error) {
	rooms, err := s.catalog.ListRooms(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list rooms"), ErrCatalogUnavailable)
	}
	return rooms, nil
}

// Open loads the catalog and starts a session with the first room selected.
func (s *Sessions) Open(ctx context.Context) (Summary, error) {
	rooms, err := s.Rooms(ctx)
	if err != nil {
		return Summary{}, err
	}

	session := &Session{
		id:        uuid.NewString(),
		rooms:     rooms,
		rules:     s.rules,
		estimator: NewEstimator(s.pricing, s.metrics, s.logger),
		gate:      s.gate,
		workflow:  s.workflow,
		criteria:  booking.DefaultCriteria(rooms),
		state:     booking.Idle{},
		lastSeen:  s.clock.Now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	count := len(s.sessions)
	s.mu.Unlock()
	s.setActive(count)

	s.logger.Debug("Booking session opened", "session_id", session.id, "rooms", len(rooms))
	return session.Summary(), nil
}

func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touch(s.clock.Now())
	return session, nil
}

func (s *Sessions) Summary(id string) (Summary, error) {
	session, err := s.Get(id)
	if err != nil {
		return Summary{}, err
	}
	return session.Summary(), nil
}

func (s *Sessions) UpdateCriteria(ctx context.Context, id string, patch booking.CriteriaPatch) (Summary, error) {
	session, err := s.Get(id)
	if err != nil {
		return Summary{}, err
	}
	sum, err := session.UpdateCriteria(ctx, patch)
	if err != nil {
		return Summary{}, errs.Mark(err, errs.ErrValidation)
	}
	return sum, nil
}

func (s *Sessions) CheckAvailability(ctx context.Context, id string) (Summary, error) {
	session, err := s.Get(id)
	if err != nil {
		return Summary{}, err
	}
	return session.CheckAvailability(ctx)
}

func (s *Sessions) Submit(ctx context.Context, id string, in SubmitInput) (Confirmation, error) {
	session, err := s.Get(id)
	if err != nil {
		return Confirmation{}, err
	}
	return session.Submit(ctx, in)
}

// Sweep evicts sessions idle for longer than the configured TTL.
func (s *Sessions) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	evicted := 0
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			session.estimator.Reset()
			delete(s.sessions, id)
			evicted++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if evicted > 0 {
		s.setActive(count)
		s.logger.Info("Expired booking sessions evicted", "evicted", evicted, "remaining", count)
	}
	return evicted
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Sessions) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Sessions) setActive(count int) {
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(count))
	}
}
