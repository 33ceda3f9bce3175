//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"riad-booking/internal/handler/middleware"
	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/config"
	"riad-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig, clk clock.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.NewRateLimiter(cfg, clk).Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func TestRateLimiter(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	router := newLimitedRouter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}, clk)
	guest := map[string]string{"X-Forwarded-For": "198.51.100.7"}

	for i := 0; i < 2; i++ {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, guest)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, guest)
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1"})

	t.Run("other clients keep their own bucket", func(t *testing.T) {
		other := map[string]string{"X-Forwarded-For": "203.0.113.9"}
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, other)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bucket refills with time", func(t *testing.T) {
		clk.Add(time.Second)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, guest)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		rec = httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, guest)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestRateLimiter_Defaults(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	router := newLimitedRouter(config.RateLimitConfig{}, clk)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
