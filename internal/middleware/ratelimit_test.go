package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func hit(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterExhaustsBurst(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"), "request %d within burst", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
}

func TestRateLimiterIsPerIP(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))

	// a different client still has its full burst
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"))
}

func TestRateLimiterRecoversAfterRefill(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(50, 1))

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))

	// at 50 rps a token is back within 20ms
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
}
