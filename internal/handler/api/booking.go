package api

import (
	"net/http"

	reqdto "riad-booking/internal/handler/dto/request"
	resdto "riad-booking/internal/handler/dto/response"
	"riad-booking/internal/handler/httperr"
	"riad-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	sessions usecase.SessionManager
}

func NewBookingHandler(sessions usecase.SessionManager) *BookingHandler {
	return &BookingHandler{sessions: sessions}
}

// @Summary Open booking session
// @Description Load the room catalog and start a booking session with the first room selected
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 503 {object} httperr.Response
// @Router /api/booking/sessions [post]
func (h *BookingHandler) Open(c *gin.Context) {
	summary, err := h.sessions.Open(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/booking/sessions/"+summary.SessionID)
	c.JSON(http.StatusCreated, resdto.FromSummary(summary))
}

// @Summary Get booking session
// @Description Current criteria, quote, displayed estimate and workflow state
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking/sessions/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	summary, err := h.sessions.Summary(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Update booking criteria
// @Description Apply the changed fields and refresh the price quote
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateCriteriaRequest true "Changed criteria"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking/sessions/{id}/criteria [patch]
func (h *BookingHandler) UpdateCriteria(c *gin.Context) {
	var req reqdto.UpdateCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	summary, err := h.sessions.UpdateCriteria(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Check availability
// @Description Ask the booking API whether the current criteria can be booked
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/booking/sessions/{id}/availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	summary, err := h.sessions.CheckAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithSummary(c, err, summary)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

// @Summary Submit reservation
// @Description Validate, check availability, fetch the authoritative price and create the reservation
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SubmitReservationRequest true "Guest contact"
// @Success 201 {object} resdto.ConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/booking/sessions/{id}/reservations [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	confirmation, err := h.sessions.Submit(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		abortWithSummary(c, err, confirmation.Summary)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmation(confirmation))
}

// abortWithSummary attaches the session as it stands after a failed step so
// the widget can render the failed state without another round trip.
func abortWithSummary(c *gin.Context, err error, summary usecase.Summary) {
	status, msg := httperr.Classify(err)
	var detail any
	if summary.SessionID != "" {
		detail = resdto.FromSummary(summary)
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}
