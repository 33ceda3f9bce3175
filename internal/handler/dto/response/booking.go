package response

import (
	"riad-booking/internal/domain/booking"
	"riad-booking/internal/handler/httperr"
	"riad-booking/internal/usecase"
)

type RoomResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	BasePricePerNight float64 `json:"basePricePerNight"`
	MaxGuests         int     `json:"maxGuests"`
}

type CriteriaResponse struct {
	RoomID        string `json:"roomId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	AdultsCount   int    `json:"adultsCount"`
	ChildrenCount int    `json:"childrenCount"`
	PromoCode     string `json:"promoCode,omitempty"`
}

type QuoteResponse struct {
	TotalPrice float64 `json:"totalPrice"`
	Nights     int     `json:"nights"`
}

// EstimateResponse is the displayed price. Total is rounded to whole units.
type EstimateResponse struct {
	Base            float64 `json:"base"`
	Nights          int     `json:"nights"`
	Total           int64   `json:"total"`
	Fallback        bool    `json:"fallback"`
	LongStayApplied bool    `json:"longStayApplied"`
	PromoApplied    bool    `json:"promoApplied"`
}

type StateResponse struct {
	Phase     string   `json:"phase"`
	Message   string   `json:"message,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Total     *float64 `json:"total,omitempty"`
}

type SessionResponse struct {
	SessionID string            `json:"sessionId"`
	Rooms     []RoomResponse    `json:"rooms"`
	Criteria  CriteriaResponse  `json:"criteria"`
	Nights    int               `json:"nights"`
	Quote     *QuoteResponse    `json:"quote"`
	Estimate  *EstimateResponse `json:"estimate"`
	State     StateResponse     `json:"state"`
}

type ConfirmationResponse struct {
	Reference string          `json:"reference"`
	Session   SessionResponse `json:"session"`
}

func FromRoom(r *booking.Room) RoomResponse {
	return RoomResponse{
		ID:                r.ID(),
		Name:              r.Name(),
		BasePricePerNight: r.BasePricePerNight().Amount(),
		MaxGuests:         r.MaxGuests(),
	}
}

func FromCatalog(rooms booking.Catalog) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = FromRoom(r)
	}
	return out
}

func FromSummary(s usecase.Summary) SessionResponse {
	resp := SessionResponse{
		SessionID: s.SessionID,
		Rooms:     FromCatalog(s.Rooms),
		Criteria: CriteriaResponse{
			RoomID:        s.Criteria.RoomID,
			CheckIn:       booking.FormatDate(s.Criteria.CheckIn),
			CheckOut:      booking.FormatDate(s.Criteria.CheckOut),
			AdultsCount:   s.Criteria.AdultsCount,
			ChildrenCount: s.Criteria.ChildrenCount,
			PromoCode:     s.Criteria.PromoCode,
		},
		Nights: s.Criteria.Nights(),
		State:  FromState(s.State),
	}

	if s.Quote != nil {
		resp.Quote = &QuoteResponse{
			TotalPrice: s.Quote.Total().Amount(),
			Nights:     s.Quote.Nights(),
		}
		resp.Nights = s.Quote.Nights()
	}
	if s.Estimate != nil {
		resp.Estimate = &EstimateResponse{
			Base:            s.Estimate.Base.Amount(),
			Nights:          s.Estimate.Nights,
			Total:           s.Estimate.DisplayTotal,
			Fallback:        s.Estimate.Fallback,
			LongStayApplied: s.Estimate.LongStayApplied,
			PromoApplied:    s.Estimate.PromoApplied,
		}
	}
	return resp
}

func FromState(state booking.State) StateResponse {
	if state == nil {
		return StateResponse{Phase: string(booking.PhaseIdle)}
	}

	resp := StateResponse{Phase: string(state.Phase())}
	switch st := state.(type) {
	case booking.Submitting:
		total := st.Total.Amount()
		resp.Total = &total
	case booking.Failed:
		if st.Reason != nil {
			resp.Message = FailureMessage(st.Reason)
		}
	case booking.Succeeded:
		resp.Reference = st.Reference
	}
	return resp
}

func FromConfirmation(c usecase.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		Reference: c.Reference,
		Session:   FromSummary(c.Summary),
	}
}

// FailureMessage is the guest-facing text for a failed workflow.
func FailureMessage(err error) string {
	_, msg := httperr.Classify(err)
	return msg
}
