package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	header := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, w.Body.String())
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "bestaand-id")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "bestaand-id", w.Header().Get(RequestIDHeader))
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/boom", func(c *gin.Context) {
		panic("kapot")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// stubLimiter 控制限流结果
type stubLimiter struct {
	allowed    bool
	err        error
	lastKey    string
	lastLimit  int
	lastWindow time.Duration
}

func (s *stubLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	s.lastKey = key
	s.lastLimit = limit
	s.lastWindow = window
	return s.allowed, s.err
}

func newRateLimitRouter(cfg RateLimitConfig, limiter RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RateLimit(cfg, limiter))
	engine.GET("/v1/brands", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRateLimit_Allows(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	engine := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 5}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, limiter.lastKey, "/v1/brands")
	assert.Equal(t, 5, limiter.lastLimit)
	assert.Equal(t, time.Second, limiter.lastWindow)
}

func TestRateLimit_BurstWidensWindow(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	engine := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 20, Burst: 40}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 40, limiter.lastLimit)
	assert.Equal(t, 2*time.Second, limiter.lastWindow)
}

func TestRateLimit_Denies(t *testing.T) {
	limiter := &stubLimiter{allowed: false}
	engine := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 5}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_LimiterFailureFallsOpen(t *testing.T) {
	limiter := &stubLimiter{err: assert.AnError}
	engine := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 5}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	engine := newRateLimitRouter(RateLimitConfig{Enabled: false}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
