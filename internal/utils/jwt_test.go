package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("super-secret"), Issuer: "verimail", SessionTTL: time.Hour}

	token, ttl, err := manager.IssueSessionToken("user-123")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := manager.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "verimail", claims.Issuer)
}

func TestSessionToken_DefaultTTLIsOneDay(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("k")}
	_, ttl, err := manager.IssueSessionToken("u1")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestSessionToken_Expired(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("k"), SessionTTL: -time.Minute}
	token, _, err := manager.IssueSessionToken("u1")
	require.NoError(t, err)

	_, err = manager.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := JWTManager{Secret: []byte("right"), SessionTTL: time.Hour}.IssueSessionToken("u2")
	require.NoError(t, err)

	_, err = JWTManager{Secret: []byte("wrong")}.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := JWTManager{Secret: []byte("k")}.ParseSessionToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
