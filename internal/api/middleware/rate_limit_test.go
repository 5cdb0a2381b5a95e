package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_PerKey(t *testing.T) {
	l := NewIPRateLimiter(1, time.Hour, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))

	assert.True(t, l.Allow("2.2.2.2"))
}

func TestIPRateLimiter_ExpiresIdleVisitors(t *testing.T) {
	l := NewIPRateLimiter(1, time.Hour, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	now = now.Add(10 * time.Minute)
	assert.True(t, l.Allow("2.2.2.2"))

	l.mu.Lock()
	_, kept := l.visitors["1.1.1.1"]
	l.mu.Unlock()
	assert.False(t, kept)
}

func TestIPRateLimiter_SweepsOncePerTTL(t *testing.T) {
	l := NewIPRateLimiter(1, time.Hour, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	has := func(key string) bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		_, ok := l.visitors[key]
		return ok
	}

	l.Allow("a")
	now = now.Add(5 * time.Minute)
	l.Allow("b")
	assert.True(t, has("a"), "a is idle for exactly ttl and must be kept")

	// a 已空闲超过 ttl，但距上次扫描不足 ttl，本次不扫描
	now = now.Add(time.Minute)
	l.Allow("c")
	assert.True(t, has("a"))

	now = now.Add(4 * time.Minute)
	l.Allow("d")
	assert.False(t, has("a"))
	assert.True(t, has("c"))
	assert.True(t, has("d"))
}

func TestRateLimit_Returns429(t *testing.T) {
	r := gin.New()
	r.POST("/signin", RateLimit(NewIPRateLimiter(1, time.Hour, 1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/signin", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many requests"}`, rec.Body.String())
}
