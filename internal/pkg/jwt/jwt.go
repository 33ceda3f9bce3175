package jwt

import (
	"errors"
	"time"

	"riad-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	Issuer   = "riad-booking"
	Audience = "booking-api"
)

var ErrMissingSecret = errors.New("service token secret is empty")

// Claims identify the booking session a call to the booking API is made for.
type Claims struct {
	SessionID string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

// Service mints short-lived HS256 tokens for outbound booking API calls.
type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *Service) Enabled() bool {
	return s != nil && len(s.secretKey) > 0
}

func (s *Service) GenerateToken(sessionID string) (string, error) {
	if !s.Enabled() {
		return "", ErrMissingSecret
	}

	now := s.clock.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
