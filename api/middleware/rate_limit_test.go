package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	t.Parallel()

	app := echo.New()
	limiter := NewRateLimiter(rate.Limit(0.001), 2, time.Minute)
	app.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, limiter.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(rate.Limit(0.001), 1, time.Minute)
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.2"))
}
