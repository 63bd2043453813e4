package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	token, err := Issue("admin@club.test", "Admin", "admin", "clubsync", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(token, "secret", "clubsync")
	require.NoError(t, err)
	assert.Equal(t, "admin@club.test", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "clubsync", claims.Issuer)
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, err := Issue("admin@club.test", "Admin", "admin", "clubsync", "secret", time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, "other-key", "clubsync")
	assert.Error(t, err)
}

func TestParseRejectsIssuerMismatch(t *testing.T) {
	token, err := Issue("admin@club.test", "Admin", "admin", "someone-else", "secret", time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, "secret", "clubsync")
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := Issue("admin@club.test", "Admin", "admin", "clubsync", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, "secret", "clubsync")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	live, err := Issue("a@b.c", "A", "admin", "clubsync", "secret", time.Hour)
	require.NoError(t, err)
	assert.False(t, Expired(live, now))

	stale, err := Issue("a@b.c", "A", "admin", "clubsync", "secret", -time.Minute)
	require.NoError(t, err)
	assert.True(t, Expired(stale, now))

	// opaque credentials are never declared expired client-side
	assert.False(t, Expired("not-a-jwt", now))
	assert.False(t, Expired("", now))
}
