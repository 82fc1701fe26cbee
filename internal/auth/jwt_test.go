package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_ValidToken(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", "", time.Hour)
	require.NoError(t, err)

	claims, err := NewVerifier("test-secret", "").Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", "", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("other-secret", "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", "", -time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier("test-secret", "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Audience(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", "authenticated", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("test-secret", "authenticated").Verify(token)
	assert.NoError(t, err)

	_, err = NewVerifier("test-secret", "someone-else").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	c := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewVerifier("test-secret", "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingSubject(t *testing.T) {
	c := Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewVerifier("test-secret", "").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t1, err := GenerateToken("s", "u", "", time.Hour)
	require.NoError(t, err)
	t2, err := GenerateToken("s", "u", "", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}
