package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsync/internal/api"
	"clubsync/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testIssuer = "clubsync-test"
	testKey    = "test-signing-key"
)

// authBackend fakes just the two auth endpoints.
func authBackend(t *testing.T) http.Handler {
	t.Helper()
	r := gin.New()
	r.POST("/auth/login", func(c *gin.Context) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		if body.Password != "hunter2" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		token, err := auth.Issue(body.Email, "Admin", "admin", testIssuer, testKey, time.Hour)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{
			"authToken": token,
			"user":      gin.H{"_id": "u1", "name": "Admin", "email": body.Email},
			"message":   "ok",
		})
	})
	r.GET("/auth/me", func(c *gin.Context) {
		token := c.GetHeader("authToken")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing auth token"})
			return
		}
		if _, err := auth.Parse(token, testKey, testIssuer); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid auth token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": gin.H{"_id": "u1", "name": "Admin", "email": "admin@club.test"}})
	})
	return r
}

func newSession(t *testing.T, store TokenStore) *Session {
	t.Helper()
	ts := httptest.NewServer(authBackend(t))
	t.Cleanup(ts.Close)
	return New(ts.URL, "authToken", 2*time.Second, store)
}

func TestLoginStoresCredentialAndIdentity(t *testing.T) {
	store := NewMemoryStore()
	s := newSession(t, store)

	user, err := s.Login(context.Background(), "admin@club.test", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "admin@club.test", user.Email)
	assert.True(t, s.IsAuthenticated())
	assert.NotEmpty(t, s.Token())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, s.Token(), saved)
}

func TestLoginFailureLeavesSessionClean(t *testing.T) {
	s := newSession(t, NewMemoryStore())

	_, err := s.Login(context.Background(), "admin@club.test", "wrong")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestMeDiscardsRejectedCredential(t *testing.T) {
	store := NewMemoryStore()
	// a structurally valid JWT signed with the wrong key
	forged, err := auth.Issue("admin@club.test", "Admin", "admin", testIssuer, "wrong-key", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Save(forged))

	s := newSession(t, store)
	assert.NotEmpty(t, s.Token(), "restored credential is held until validated")

	_, err = s.Me(context.Background())
	require.Error(t, err)
	assert.Empty(t, s.Token())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, saved, "rejected credential is purged from storage")
}

func TestExpiredStoredTokenIsNotPresented(t *testing.T) {
	store := NewMemoryStore()
	stale, err := auth.Issue("admin@club.test", "Admin", "admin", testIssuer, testKey, -time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Save(stale))

	s := newSession(t, store)
	assert.Empty(t, s.Token())
}

func TestLogoutClearsEverything(t *testing.T) {
	store := NewMemoryStore()
	s := newSession(t, store)

	_, err := s.Login(context.Background(), "admin@club.test", "hunter2")
	require.NoError(t, err)

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	saved, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authtoken")
	store := NewFileStore(path)

	// empty before anything is saved, and again after clearing
	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save("tok-123"))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	require.NoError(t, store.Clear())
	got, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestSessionRestoresStoredCredential(t *testing.T) {
	store := NewMemoryStore()
	live, err := auth.Issue("admin@club.test", "Admin", "admin", testIssuer, testKey, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Save(live))

	s := newSession(t, store)
	assert.Equal(t, live, s.Token())
	assert.False(t, s.IsAuthenticated(), "restored credential carries no identity until Me")

	me, err := s.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@club.test", me.Email)
	assert.True(t, s.IsAuthenticated())
}
