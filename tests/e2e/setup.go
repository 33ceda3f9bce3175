//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"riad-booking/cmd/bootstrap"
	"riad-booking/cmd/bootstrap/components"
	"riad-booking/internal/pkg/config"
	"riad-booking/tests/common/bookingtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite setup: a fake booking API and the real fx graph in front of it
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*bookingtest.Server, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	api := bookingtest.NewServer(t)

	router, cfg, app := buildE2EApp(createTestConfig(api.URL))
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx application", "error", err.Error())
		}
	})

	return api, router, cfg
}

// ------------------------------------------------------------
// Builds the application for E2E tests
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(testConfig config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.ObservabilityModule,
		bootstrap.JWTModule,
		components.BookingAPIModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application did not provide a router")
	}

	return router, cfg, app
}

func createTestConfig(bookingAPIURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.BookingAPI.BaseURL = bookingAPIURL
	testConfig.BookingAPI.TokenSecret = "e2e-secret"
	return testConfig
}

// ------------------------------------------------------------
// Setup shared by every E2E suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	API    *bookingtest.Server
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	api, router, cfg := setupE2EEnvironment(t)
	s.API = api
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.API, "failed to start fake booking API")
	require.NotEmpty(t, s.Config, "failed to load config")
	require.NotNil(t, s.Router, "failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.API.Reset()
}
