package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, booking API URL, etc.)
// - default: Values common across all environments (timezone, timeout, discount rules, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	BookingAPI BookingAPIConfig
	Booking    BookingConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Casablanca"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
	File           string `envconfig:"LOG_FILE"`
	MaxSizeMB      int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups     int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays     int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type BookingAPIConfig struct {
	BaseURL     string        `envconfig:"BOOKING_API_BASE_URL" required:"true"`
	Timeout     time.Duration `envconfig:"BOOKING_API_TIMEOUT" default:"10s"`
	TokenSecret string        `envconfig:"BOOKING_API_TOKEN_SECRET"`
	TokenTTL    time.Duration `envconfig:"BOOKING_API_TOKEN_TTL" default:"5m"`
}

type BookingConfig struct {
	PromoCode          string        `envconfig:"BOOKING_PROMO_CODE" default:"RIAD10"`
	PromoPercentOff    float64       `envconfig:"BOOKING_PROMO_PERCENT_OFF" default:"10"`
	LongStayNights     int           `envconfig:"BOOKING_LONG_STAY_NIGHTS" default:"7"`
	LongStayPercentOff float64       `envconfig:"BOOKING_LONG_STAY_PERCENT_OFF" default:"10"`
	SessionIdleTTL     time.Duration `envconfig:"BOOKING_SESSION_IDLE_TTL" default:"30m"`
	SweepInterval      time.Duration `envconfig:"BOOKING_SESSION_SWEEP_INTERVAL" default:"1m"`
}

type RateLimitConfig struct {
	RequestsPerMinute float64 `envconfig:"RATE_LIMIT_RPM" default:"120"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Location"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Casablanca",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		BookingAPI: BookingAPIConfig{
			BaseURL:  "http://localhost:18080",
			Timeout:  2 * time.Second,
			TokenTTL: time.Minute,
		},
		Booking: BookingConfig{
			PromoCode:          "RIAD10",
			PromoPercentOff:    10,
			LongStayNights:     7,
			LongStayPercentOff: 10,
			SessionIdleTTL:     30 * time.Minute,
			SweepInterval:      time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             100,
		},
	}
}
