package httperr

import (
	"errors"
	"net/http"

	"riad-booking/internal/pkg/errs"
	"riad-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Classify maps a booking error to its HTTP status and the message shown to
// the guest.
func Classify(err error) (int, string) {
	var rejection *usecase.RejectionError

	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound, "Booking session not found"
	case errors.Is(err, usecase.ErrOperationInProgress):
		return http.StatusConflict, "Another booking operation is in progress"
	case errors.Is(err, usecase.ErrRoomUnavailable):
		return http.StatusConflict, usecase.ErrRoomUnavailable.Error()
	case errors.Is(err, usecase.ErrAvailabilityServiceUnavailable):
		return http.StatusServiceUnavailable, usecase.ErrAvailabilityServiceUnavailable.Error()
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, usecase.ErrCatalogUnavailable.Error()
	case errors.Is(err, usecase.ErrPricingFailed):
		return http.StatusBadGateway, usecase.ErrPricingFailed.Error()
	case errors.As(err, &rejection):
		return http.StatusUnprocessableEntity, rejection.Error()
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return http.StatusBadGateway, usecase.ErrSubmissionFailed.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// Abort classifies err and aborts the request with it.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}
