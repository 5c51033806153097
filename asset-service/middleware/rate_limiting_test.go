package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedRouter(config RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(time.Minute)

	router := gin.New()
	router.GET("/ping", limiter.RateLimitMiddleware(config), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRateLimitAllowsWithinLimit(t *testing.T) {
	router := setupRateLimitedRouter(RateLimitConfig{
		MaxRequests:   5,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	router := setupRateLimitedRouter(RateLimitConfig{
		MaxRequests:   3,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimitResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(time.Minute)
	config := RateLimitConfig{
		MaxRequests:   1,
		TimeWindow:    50 * time.Millisecond,
		BlockDuration: 50 * time.Millisecond,
	}

	assert.True(t, limiter.isAllowed("client-1", config))
	assert.False(t, limiter.isAllowed("client-1", config))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, limiter.isAllowed("client-1", config))
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	limiter := NewRateLimiter(time.Minute)
	config := RateLimitConfig{
		MaxRequests:   1,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	}

	assert.True(t, limiter.isAllowed("client-a", config))
	assert.True(t, limiter.isAllowed("client-b", config))
	assert.False(t, limiter.isAllowed("client-a", config))
}
