package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/pkg/metrics"
)

var ErrSuperseded = errs.New("quote request superseded by a newer one")

// Estimator keeps one widget's live quote in sync with its criteria.
// Only the most recently started refresh may write the quote: starting a
// refresh cancels the previous one and takes a new generation number, which
// is compared again when the pricing call returns.
type Estimator struct {
	pricing PricingService
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	quote      *booking.PriceQuote
}

func NewEstimator(pricing PricingService, m *metrics.Metrics, logger *slog.Logger) *Estimator {
	return &Estimator{
		pricing: pricing,
		metrics: m,
		logger:  logger,
	}
}

// PendingQuote is one issued pricing request.
type PendingQuote struct {
	estimator  *Estimator
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	criteria   booking.Criteria
}

// Start issues a refresh and supersedes any refresh still in flight.
// Callers that must order refreshes against other state changes call Start
// under their own lock and Wait outside it.
func (e *Estimator) Start(ctx context.Context, criteria booking.Criteria) *PendingQuote {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
	}
	e.generation++
	callCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	return &PendingQuote{
		estimator:  e,
		generation: e.generation,
		ctx:        callCtx,
		cancel:     cancel,
		criteria:   criteria,
	}
}

// Wait runs the pricing call. A nil quote with a nil error means the
// criteria are incomplete or the pricing API failed; the widget then falls
// back to the local estimate. ErrSuperseded means a newer refresh owns the
// quote and nothing was written.
func (p *PendingQuote) Wait() (*booking.PriceQuote, error) {
	e := p.estimator
	defer p.release()

	if !p.criteria.Quotable() {
		if !e.settle(p.generation, nil) {
			e.observe(metrics.OutcomeSuperseded)
			return nil, ErrSuperseded
		}
		e.observe(metrics.OutcomeSkipped)
		return nil, nil
	}

	quote, err := e.pricing.Quote(p.ctx, p.criteria)
	if err != nil {
		if !e.settle(p.generation, nil) {
			e.observe(metrics.OutcomeSuperseded)
			return nil, ErrSuperseded
		}
		if !errors.Is(err, context.Canceled) {
			e.logger.Warn("Price quote unavailable, falling back to local estimate",
				"room_id", p.criteria.RoomID,
				"error", err.Error())
		}
		e.observe(metrics.OutcomeFailed)
		return nil, nil
	}

	if !e.settle(p.generation, &quote) {
		e.observe(metrics.OutcomeSuperseded)
		return nil, ErrSuperseded
	}
	e.observe(metrics.OutcomeOK)
	return &quote, nil
}

func (p *PendingQuote) release() {
	p.cancel()

	e := p.estimator
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation == p.generation {
		e.cancel = nil
	}
}

// Refresh is Start followed by Wait.
func (e *Estimator) Refresh(ctx context.Context, criteria booking.Criteria) (*booking.PriceQuote, error) {
	return e.Start(ctx, criteria).Wait()
}

// Reset drops the quote and cancels any refresh in flight.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.generation++
	e.quote = nil
}

func (e *Estimator) Quote() *booking.PriceQuote {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.quote == nil {
		return nil
	}
	q := *e.quote
	return &q
}

func (e *Estimator) settle(generation uint64, quote *booking.PriceQuote) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if generation != e.generation {
		return false
	}
	e.quote = quote
	return true
}

func (e *Estimator) observe(outcome string) {
	if e.metrics != nil {
		e.metrics.QuoteRequests.WithLabelValues(outcome).Inc()
	}
}
