//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, token, secret string, now time.Time) (*jwt.Claims, error) {
	t.Helper()
	var claims jwt.Claims
	_, err := gojwt.ParseWithClaims(token, &claims,
		func(tok *gojwt.Token) (any, error) {
			assert.Equal(t, gojwt.SigningMethodHS256.Alg(), tok.Method.Alg())
			return []byte(secret), nil
		},
		gojwt.WithAudience(jwt.Audience),
		gojwt.WithIssuer(jwt.Issuer),
		gojwt.WithTimeFunc(func() time.Time { return now }),
	)
	return &claims, err
}

func TestService_GenerateToken(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := jwt.NewService("secret", 5*time.Minute, clock.NewMockClock(issued))

	token, err := svc.GenerateToken("session-1")
	require.NoError(t, err)

	claims, err := parse(t, token, "secret", issued.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, issued.Add(5*time.Minute).Equal(claims.ExpiresAt.Time))

	_, err = parse(t, token, "secret", issued.Add(6*time.Minute))
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)

	_, err = parse(t, token, "other", issued)
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
}

func TestService_Disabled(t *testing.T) {
	var nilService *jwt.Service
	assert.False(t, nilService.Enabled())

	svc := jwt.NewService("", time.Minute, clock.NewRealClock())
	assert.False(t, svc.Enabled())
	_, err := svc.GenerateToken("session-1")
	assert.ErrorIs(t, err, jwt.ErrMissingSecret)
}
