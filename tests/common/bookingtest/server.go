//go:build unit || e2e

package bookingtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type Room struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	MaxGuests int     `json:"max_guests"`
}

// Server is an in-memory booking API. Prices are nights x base price.
type Server struct {
	*httptest.Server

	mu               sync.Mutex
	rooms            []Room
	unavailable      map[string]bool
	catalogDown      bool
	availabilityDown bool
	pricingDown      bool
	rejectMessage    string
	calls            map[string]int
	reservations     []map[string]any
	authHeaders      []string
}

func DefaultRooms() []Room {
	return []Room{
		{ID: "r1", Name: "Suite Majorelle", BasePrice: 200, MaxGuests: 2},
		{ID: "r2", Name: "Chambre Atlas", BasePrice: 90, MaxGuests: 3},
	}
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		rooms:       DefaultRooms(),
		unavailable: make(map[string]bool),
		calls:       make(map[string]int),
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(s.record)
	engine.GET("/api/rooms", s.listRooms)
	engine.POST("/api/reservations/pricing", s.pricing)
	engine.POST("/api/reservations/check-availability", s.availability)
	engine.POST("/api/reservations", s.createReservation)

	s.Server = httptest.NewServer(engine)
	t.Cleanup(s.Close)
	return s
}

// Reset restores the default catalog and forgets every recorded call.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = DefaultRooms()
	s.unavailable = make(map[string]bool)
	s.catalogDown = false
	s.availabilityDown = false
	s.pricingDown = false
	s.rejectMessage = ""
	s.calls = make(map[string]int)
	s.reservations = nil
	s.authHeaders = nil
}

func (s *Server) SetRooms(rooms []Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = rooms
}

func (s *Server) MarkUnavailable(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable[roomID] = true
}

func (s *Server) SetCatalogDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogDown = down
}

func (s *Server) SetAvailabilityDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availabilityDown = down
}

func (s *Server) SetPricingDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricingDown = down
}

// RejectReservations makes the next reservations fail with msg in the body.
func (s *Server) RejectReservations(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectMessage = msg
}

// Calls returns how many times path was requested.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *Server) Reservations() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.reservations))
	copy(out, s.reservations)
	return out
}

func (s *Server) AuthHeaders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.authHeaders))
	copy(out, s.authHeaders)
	return out
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.calls[c.Request.URL.Path]++
	if auth := c.GetHeader("Authorization"); auth != "" {
		s.authHeaders = append(s.authHeaders, auth)
	}
	s.mu.Unlock()
	c.Next()
}

func (s *Server) listRooms(c *gin.Context) {
	s.mu.Lock()
	rooms, down := s.rooms, s.catalogDown
	s.mu.Unlock()
	if down {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog offline"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type stayRequest struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func (s *Server) nights(req stayRequest) (int, bool) {
	in, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil || !out.After(in) {
		return 0, false
	}
	return int(out.Sub(in).Hours() / 24), true
}

func (s *Server) room(id string) (Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

func (s *Server) pricing(c *gin.Context) {
	s.mu.Lock()
	down := s.pricingDown
	s.mu.Unlock()
	if down {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pricing engine offline"})
		return
	}

	var req stayRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	room, ok := s.room(req.RoomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	nights, ok := s.nights(req)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_price": room.BasePrice * float64(nights), "nights": nights})
}

func (s *Server) availability(c *gin.Context) {
	s.mu.Lock()
	down := s.availabilityDown
	s.mu.Unlock()
	if down {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "maintenance"})
		return
	}

	var req stayRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	s.mu.Lock()
	blocked := s.unavailable[req.RoomID]
	s.mu.Unlock()
	if blocked {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": "Room is already booked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

func (s *Server) createReservation(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	s.mu.Lock()
	s.reservations = append(s.reservations, payload)
	reject := s.rejectMessage
	count := len(s.reservations)
	s.mu.Unlock()

	if reject != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reject})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reference": referenceFor(count)})
}

func referenceFor(n int) string {
	return fmt.Sprintf("RIAD-%04d", n)
}
