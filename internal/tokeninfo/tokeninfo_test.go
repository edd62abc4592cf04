package tokeninfo_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/internal/tokeninfo"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	return token
}

func TestInspect(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{
		"sub":                "p-1",
		"email":              "jane@example.com",
		"iss":                "https://acme.outseta.com",
		"outseta:accountUid": "acc-1",
		"iat":                issued.Unix(),
		"exp":                issued.Add(24 * time.Hour).Unix(),
	})

	info, err := tokeninfo.Inspect("Bearer " + token)
	require.NoError(t, err)

	assert.Equal(t, "p-1", info.Subject)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "acc-1", info.AccountID)
	assert.True(t, issued.Equal(info.IssuedAt))
	assert.Equal(t, 24*time.Hour, info.ExpiresAt.Sub(info.IssuedAt))

	assert.False(t, info.Expired(issued.Add(time.Hour)))
	assert.Equal(t, 23*time.Hour, info.Remaining(issued.Add(time.Hour)))
	assert.True(t, info.Expired(issued.Add(25*time.Hour)))
	assert.Zero(t, info.Remaining(issued.Add(25*time.Hour)))
}

func TestInspect_Expired(t *testing.T) {
	t.Parallel()

	// Signature and expiry are not checked.
	token := signedToken(t, jwt.MapClaims{"sub": "p-1", "exp": time.Now().Add(-time.Hour).Unix()})

	info, err := tokeninfo.Inspect(token)
	require.NoError(t, err)
	assert.True(t, info.Expired(time.Now()))
}

func TestInspect_Invalid(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "opaque-token", "a.b.c"} {
		_, err := tokeninfo.Inspect(token)
		assert.ErrorIs(t, err, constants.ErrInvalidTokenFormat, token)
	}
}
