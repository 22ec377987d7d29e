package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-jwt-secret")

func TestNewAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()
	token, exp, err := NewAccessToken(userID, "ana@example.com", 15*time.Minute, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestAccessClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewAccessToken(uuid.NewString(), "", time.Minute, secret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, []byte("other"))
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	token, _, err := NewAccessToken(uuid.NewString(), "", -time.Minute, secret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, secret)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestAccessClaimsFromToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "x", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	})
	signed, err := tkn.SignedString(secret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(signed, secret)
	assert.Error(t, err)
}
