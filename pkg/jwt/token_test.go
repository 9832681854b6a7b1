package jwtPkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")

	token, exp, err := Sign(map[string]interface{}{"id": "01ADMIN", "username": "admin"}, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	claims, err := Verify(token, AccessTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "01ADMIN", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Unix(exp, 0), claims.ExpiresAt, time.Second)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	t.Setenv(AccessTokenSecret, "one")
	token, _, err := Sign(map[string]interface{}{"id": "1", "username": "admin"}, time.Hour)
	require.NoError(t, err)

	t.Setenv(AccessTokenSecret, "two")
	_, err = Verify(token, AccessTokenSecret)
	assert.Error(t, err)
}

func TestVerify_RejectsMissingClaims(t *testing.T) {
	t.Setenv(AccessTokenSecret, "secret")
	token, _, err := Sign(map[string]interface{}{"id": "1"}, time.Hour)
	require.NoError(t, err)

	_, err = Verify(token, AccessTokenSecret)
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestBearerToken(t *testing.T) {
	tok, err := BearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrEmptyHeader)

	_, err = BearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = BearerToken("Bearer   ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
