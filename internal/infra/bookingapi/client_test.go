//go:build unit

package bookingapi_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/infra"
	"riad-booking/internal/infra/bookingapi"
	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/jwt"
	"riad-booking/internal/pkg/metrics"
	"riad-booking/internal/pkg/reqctx"
	"riad-booking/tests/common/bookingtest"
	"riad-booking/tests/common/builder"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string, tokens *jwt.Service) *bookingapi.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return bookingapi.NewClientWithHTTP(baseURL, &http.Client{Timeout: 2 * time.Second}, tokens, metrics.New(), logger)
}

// rawServer answers every request with the given status and body.
func rawServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ListRooms(t *testing.T) {
	t.Run("catalog order is kept", func(t *testing.T) {
		api := bookingtest.NewServer(t)

		rooms, err := newClient(api.URL, nil).ListRooms(context.Background())
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "r1", rooms[0].ID())
		assert.InDelta(t, 200, rooms[0].BasePricePerNight().Amount(), 0.001)
		assert.Equal(t, 2, rooms[0].MaxGuests())
		assert.Equal(t, "Chambre Atlas", rooms[1].Name())
	})

	t.Run("numeric ids are accepted", func(t *testing.T) {
		srv := rawServer(t, http.StatusOK, `[{"id":7,"name":"Dar Zitoun","base_price":150.5,"max_guests":4}]`)

		rooms, err := newClient(srv.URL, nil).ListRooms(context.Background())
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "7", rooms[0].ID())
		assert.Equal(t, int64(15050), rooms[0].BasePricePerNight().Cents())
	})

	t.Run("invalid room is malformed", func(t *testing.T) {
		srv := rawServer(t, http.StatusOK, `[{"id":"r1","name":"","base_price":100,"max_guests":2}]`)

		_, err := newClient(srv.URL, nil).ListRooms(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})
}

func TestClient_Quote(t *testing.T) {
	t.Run("nights times base price", func(t *testing.T) {
		api := bookingtest.NewServer(t)

		quote, err := newClient(api.URL, nil).Quote(context.Background(), builder.NewCriteriaBuilder().BuildDomain())
		require.NoError(t, err)
		assert.InDelta(t, 600, quote.Total().Amount(), 0.001)
		assert.Equal(t, 3, quote.Nights())
		assert.Equal(t, 1, api.Calls("/api/reservations/pricing"))
	})

	testCases := []struct {
		name          string
		status        int
		body          string
		kind          infra.UpstreamErrorKind
		serverMessage string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"error":"room not found"}`, kind: infra.KindNotFound, serverMessage: "room not found"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, kind: infra.KindUnavailable, serverMessage: "boom"},
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"invalid dates"}`, kind: infra.KindRejected, serverMessage: "invalid dates"},
		{name: "too many requests", status: http.StatusTooManyRequests, body: ``, kind: infra.KindUnavailable},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"token expired"}`, kind: infra.KindUnavailable, serverMessage: "token expired"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"forbidden"}`, kind: infra.KindUnavailable, serverMessage: "forbidden"},
		{name: "not json", status: http.StatusOK, body: `<html>`, kind: infra.KindMalformed},
		{name: "missing fields", status: http.StatusOK, body: `{"total_price":600}`, kind: infra.KindMalformed},
		{name: "zero nights", status: http.StatusOK, body: `{"total_price":0,"nights":0}`, kind: infra.KindMalformed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := rawServer(t, tc.status, tc.body)

			_, err := newClient(srv.URL, nil).Quote(context.Background(), builder.NewCriteriaBuilder().BuildDomain())
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.kind), "got %v", err)
			assert.Equal(t, tc.serverMessage, infra.ServerMessage(err))
		})
	}

	t.Run("canceled context is not an upstream failure", func(t *testing.T) {
		api := bookingtest.NewServer(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newClient(api.URL, nil).Quote(ctx, builder.NewCriteriaBuilder().BuildDomain())
		assert.ErrorIs(t, err, context.Canceled)
		var upstream infra.UpstreamError
		assert.False(t, errors.As(err, &upstream))
	})
}

func TestClient_CheckAvailability(t *testing.T) {
	api := bookingtest.NewServer(t)
	client := newClient(api.URL, nil)
	criteria := builder.NewCriteriaBuilder().BuildDomain()

	available, err := client.CheckAvailability(context.Background(), criteria)
	require.NoError(t, err)
	assert.True(t, available)

	api.MarkUnavailable("r1")
	available, err = client.CheckAvailability(context.Background(), criteria)
	require.NoError(t, err)
	assert.False(t, available)

	api.SetAvailabilityDown(true)
	_, err = client.CheckAvailability(context.Background(), criteria)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	assert.Equal(t, "maintenance", infra.ServerMessage(err))

	t.Run("missing flag is malformed", func(t *testing.T) {
		srv := rawServer(t, http.StatusOK, `{"message":"ok"}`)

		_, err := newClient(srv.URL, nil).CheckAvailability(context.Background(), criteria)
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})
}

func TestClient_CreateReservation(t *testing.T) {
	draft, err := booking.NewReservationDraft(
		builder.NewCriteriaBuilder().BuildDomain(),
		builder.NewGuestBuilder().BuildDomain(),
		builder.MustQuote(600, 3),
		"Late arrival",
	)
	require.NoError(t, err)

	t.Run("payload and reference", func(t *testing.T) {
		api := bookingtest.NewServer(t)

		ref, err := newClient(api.URL, nil).CreateReservation(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, "RIAD-0001", ref)

		want := map[string]any{
			"first_name":       "Amina",
			"last_name":        "Benali",
			"email":            "amina@example.com",
			"phone":            "+212600000000",
			"room_id":          "r1",
			"check_in":         "2024-03-01",
			"check_out":        "2024-03-04",
			"adults_count":     float64(2),
			"children_count":   float64(0),
			"total_amount":     float64(600),
			"paid_amount":      float64(0),
			"status":           "pending",
			"special_requests": "Late arrival",
		}
		reservations := api.Reservations()
		require.Len(t, reservations, 1)
		if diff := cmp.Diff(want, reservations[0]); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejection keeps the server message", func(t *testing.T) {
		api := bookingtest.NewServer(t)
		api.RejectReservations("Room already booked for these dates")

		_, err := newClient(api.URL, nil).CreateReservation(context.Background(), draft)
		assert.True(t, infra.IsKind(err, infra.KindRejected))
		assert.Equal(t, "Room already booked for these dates", infra.ServerMessage(err))
	})

	t.Run("error field in a success body is a rejection", func(t *testing.T) {
		srv := rawServer(t, http.StatusOK, `{"error":"Invalid guest email"}`)

		_, err := newClient(srv.URL, nil).CreateReservation(context.Background(), draft)
		assert.True(t, infra.IsKind(err, infra.KindRejected))
		assert.Equal(t, "Invalid guest email", infra.ServerMessage(err))
	})

	t.Run("refused service token is not a guest rejection", func(t *testing.T) {
		srv := rawServer(t, http.StatusUnauthorized, `{"error":"invalid token signature"}`)

		_, err := newClient(srv.URL, nil).CreateReservation(context.Background(), draft)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
		assert.False(t, infra.IsKind(err, infra.KindRejected))
	})

		t.Run("missing reference is malformed", func(t *testing.T) {
		srv := rawServer(t, http.StatusCreated, `{}`)

		_, err := newClient(srv.URL, nil).CreateReservation(context.Background(), draft)
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})
}

func TestClient_Headers(t *testing.T) {
	t.Run("request id is forwarded", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("X-Request-ID")
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `[]`)
		}))
		t.Cleanup(srv.Close)

		ctx := reqctx.WithRequestID(context.Background(), "req-123")
		_, err := newClient(srv.URL, nil).ListRooms(ctx)
		require.NoError(t, err)
		assert.Equal(t, "req-123", got)
	})

	t.Run("service token carries the session", func(t *testing.T) {
		api := bookingtest.NewServer(t)
		now := time.Now()
		tokens := jwt.NewService("test-secret", time.Minute, clock.NewMockClock(now))

		ctx := reqctx.WithSessionID(context.Background(), "session-1")
		_, err := newClient(api.URL, tokens).Quote(ctx, builder.NewCriteriaBuilder().BuildDomain())
		require.NoError(t, err)

		headers := api.AuthHeaders()
		require.Len(t, headers, 1)
		require.True(t, strings.HasPrefix(headers[0], "Bearer "))

		var claims jwt.Claims
		_, err = gojwt.ParseWithClaims(strings.TrimPrefix(headers[0], "Bearer "), &claims,
			func(*gojwt.Token) (any, error) { return []byte("test-secret"), nil },
			gojwt.WithAudience(jwt.Audience),
			gojwt.WithIssuer(jwt.Issuer),
		)
		require.NoError(t, err)
		assert.Equal(t, "session-1", claims.SessionID)
	})
}
