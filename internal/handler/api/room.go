package api

import (
	"net/http"

	resdto "riad-booking/internal/handler/dto/response"
	"riad-booking/internal/handler/httperr"
	"riad-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	sessions usecase.SessionManager
}

func NewRoomHandler(sessions usecase.SessionManager) *RoomHandler {
	return &RoomHandler{sessions: sessions}
}

// @Summary List rooms
// @Description Room catalog as served by the booking API
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 503 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.sessions.Rooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalog(rooms))
}
