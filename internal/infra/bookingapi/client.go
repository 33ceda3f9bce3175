package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/infra"
	"riad-booking/internal/pkg/config"
	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/pkg/jwt"
	"riad-booking/internal/pkg/metrics"
	"riad-booking/internal/pkg/reqctx"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	roomsPath        = "/api/rooms"
	pricingPath      = "/api/reservations/pricing"
	availabilityPath = "/api/reservations/check-availability"
	reservationsPath = "/api/reservations"

	maxResponseBytes = 1 << 20
)

const (
	OpListRooms         = "list_rooms"
	OpQuote             = "quote"
	OpCheckAvailability = "check_availability"
	OpCreateReservation = "create_reservation"
)

// Client talks to the external booking API that owns rooms, pricing,
// availability and reservations.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *jwt.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewClient(cfg config.BookingAPIConfig, tokens *jwt.Service, m *metrics.Metrics, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, tokens, m, logger)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, tokens *jwt.Service, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		metrics: m,
		logger:  logger,
	}
}

func (c *Client) ListRooms(ctx context.Context) (booking.Catalog, error) {
	var rows []roomDTO
	if err := c.do(ctx, OpListRooms, http.MethodGet, roomsPath, nil, &rows); err != nil {
		return nil, err
	}

	rooms := make(booking.Catalog, 0, len(rows))
	for _, row := range rows {
		price, err := booking.NewMoneyFromAmount(row.BasePrice)
		if err != nil {
			return nil, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpListRooms, http.StatusOK, "", err)
		}
		room, err := booking.NewRoom(string(row.ID), row.Name, price, row.MaxGuests)
		if err != nil {
			return nil, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpListRooms, http.StatusOK, "", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (c *Client) Quote(ctx context.Context, criteria booking.Criteria) (booking.PriceQuote, error) {
	var resp pricingResponse
	if err := c.do(ctx, OpQuote, http.MethodPost, pricingPath, toPricingRequest(criteria), &resp); err != nil {
		return booking.PriceQuote{}, err
	}
	if resp.TotalPrice == nil || resp.Nights == nil {
		return booking.PriceQuote{}, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpQuote, http.StatusOK, "", errs.New("missing total_price or nights"))
	}

	total, err := booking.NewMoneyFromAmount(*resp.TotalPrice)
	if err != nil {
		return booking.PriceQuote{}, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpQuote, http.StatusOK, "", err)
	}
	quote, err := booking.NewPriceQuote(total, *resp.Nights)
	if err != nil {
		return booking.PriceQuote{}, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpQuote, http.StatusOK, "", err)
	}
	return quote, nil
}

func (c *Client) CheckAvailability(ctx context.Context, criteria booking.Criteria) (bool, error) {
	req := availabilityRequest{
		pricingRequest: toPricingRequest(criteria),
		GuestCount:     criteria.GuestCount(),
	}

	var resp availabilityResponse
	if err := c.do(ctx, OpCheckAvailability, http.MethodPost, availabilityPath, req, &resp); err != nil {
		return false, err
	}
	if resp.Available == nil {
		return false, infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpCheckAvailability, http.StatusOK, resp.Error, errs.New("missing available flag"))
	}
	return *resp.Available, nil
}

func (c *Client) CreateReservation(ctx context.Context, draft booking.ReservationDraft) (string, error) {
	req := reservationRequest{
		FirstName:       draft.Guest.FirstName,
		LastName:        draft.Guest.LastName,
		Email:           draft.Guest.Email,
		Phone:           draft.Guest.Phone,
		RoomID:          draft.RoomID,
		CheckIn:         booking.FormatDate(draft.CheckIn),
		CheckOut:        booking.FormatDate(draft.CheckOut),
		AdultsCount:     draft.AdultsCount,
		ChildrenCount:   draft.ChildrenCount,
		TotalAmount:     draft.Total.Amount(),
		PaidAmount:      draft.Paid.Amount(),
		Status:          draft.Status.String(),
		SpecialRequests: draft.SpecialRequests,
	}

	var resp reservationResponse
	if err := c.do(ctx, OpCreateReservation, http.MethodPost, reservationsPath, req, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", infra.WrapUpstreamErr(c.logger, infra.KindRejected, OpCreateReservation, http.StatusOK, resp.Error, nil)
	}
	if strings.TrimSpace(resp.Reference) == "" {
		return "", infra.WrapUpstreamErr(c.logger, infra.KindMalformed, OpCreateReservation, http.StatusOK, "", errs.New("missing reservation reference"))
	}
	return resp.Reference, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		if c.metrics != nil {
			c.metrics.UpstreamLatency.WithLabelValues(op, statusLabel(status, err)).Observe(time.Since(start).Seconds())
		}
	}()

	var reader io.Reader
	if body != nil {
		buf, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return errs.Wrapf(marshalErr, "encode %s request", op)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrapf(err, "build %s request", op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := reqctx.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	if c.tokens.Enabled() {
		token, tokenErr := c.tokens.GenerateToken(reqctx.SessionID(ctx))
		if tokenErr != nil {
			return errs.Wrap(tokenErr, "sign booking api token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Cancellation belongs to the caller and is not an upstream failure
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errs.Wrapf(ctxErr, "%s aborted", op)
		}
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, op, 0, "", err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errs.Wrapf(ctxErr, "%s aborted", op)
		}
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, op, status, "", err)
	}

	if status < 200 || status > 299 {
		var apiErr errorResponse
		_ = json.Unmarshal(payload, &apiErr)
		return infra.WrapUpstreamErr(c.logger, kindForStatus(status), op, status, apiErr.text(), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindMalformed, op, status, "", err)
	}
	return nil
}

func kindForStatus(status int) infra.UpstreamErrorKind {
	switch {
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500:
		return infra.KindUnavailable
	case status == http.StatusTooManyRequests || status == http.StatusRequestTimeout:
		return infra.KindUnavailable
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindUnavailable
	default:
		return infra.KindRejected
	}
}

func statusLabel(status int, err error) string {
	if status == 0 {
		if errors.Is(err, context.Canceled) {
			return "canceled"
		}
		return "error"
	}
	return strconv.Itoa(status)
}

func toPricingRequest(c booking.Criteria) pricingRequest {
	return pricingRequest{
		RoomID:        c.RoomID,
		CheckIn:       booking.FormatDate(c.CheckIn),
		CheckOut:      booking.FormatDate(c.CheckOut),
		AdultsCount:   c.AdultsCount,
		ChildrenCount: c.ChildrenCount,
	}
}
