package infra

import (
	"context"
	"errors"
	"log/slog"

	"riad-booking/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError describes a failed booking API call.
type UpstreamError struct {
	Kind          UpstreamErrorKind
	Op            string
	Status        int
	ServerMessage string
	err           error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	msg := string(e.Kind) + ": " + e.Op
	if e.ServerMessage != "" {
		msg += ": " + e.ServerMessage
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(logger *slog.Logger, kind UpstreamErrorKind, op string, status int, serverMsg string, err error) error {
	level := slog.LevelWarn
	if kind == KindUnavailable || kind == KindMalformed {
		level = slog.LevelError
	}
	attrs := []any{
		slog.String("kind", string(kind)),
		slog.String("op", op),
		slog.Int("status", status),
	}
	if serverMsg != "" {
		attrs = append(attrs, slog.String("server_message", serverMsg))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.Log(context.Background(), level, "Booking API error", attrs...)

	if err != nil {
		err = errs.Wrap(err, op)
	}
	return UpstreamError{Kind: kind, Op: op, Status: status, ServerMessage: serverMsg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ServerMessage returns the booking API's own error text, if any.
func ServerMessage(err error) string {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.ServerMessage
	}
	return ""
}

// Booking API error kinds
const (
	KindNotFound    UpstreamErrorKind = "NOT_FOUND"
	KindRejected    UpstreamErrorKind = "REJECTED"
	KindUnavailable UpstreamErrorKind = "UNAVAILABLE"
	KindMalformed   UpstreamErrorKind = "MALFORMED"
)
