package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAllowWithinBurst(t *testing.T) {
	l := NewRateLimiter(3, 60)
	now := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("1.2.3.4", now), "request %d should pass", i+1)
	}
	assert.False(t, l.allow("1.2.3.4", now))
}

func TestBucketRefillsOverTime(t *testing.T) {
	l := NewRateLimiter(1, 60) // one token per second
	now := time.Now()

	assert.True(t, l.allow("1.2.3.4", now))
	assert.False(t, l.allow("1.2.3.4", now))
	assert.True(t, l.allow("1.2.3.4", now.Add(time.Second)))
}

func TestClientsAreIsolated(t *testing.T) {
	l := NewRateLimiter(1, 60)
	now := time.Now()

	assert.True(t, l.allow("1.2.3.4", now))
	assert.False(t, l.allow("1.2.3.4", now))
	assert.True(t, l.allow("5.6.7.8", now))
}

func TestMiddlewareAnswers429(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(1, 60).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
