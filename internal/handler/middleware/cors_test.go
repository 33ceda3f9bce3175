//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"riad-booking/internal/handler/middleware"
	"riad-booking/internal/pkg/config"
	"riad-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := config.NewTestConfig().CORS
	require.NotPanics(t, func() { router.Use(middleware.NewCORSMiddleware(cfg)) })
	router.PATCH("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("allowed origin gets preflight headers", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodOptions, "/ping", nil, map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodPatch,
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodOptions, "/ping", nil, map[string]string{
			"Origin":                        "http://evil.example",
			"Access-Control-Request-Method": http.MethodPatch,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
