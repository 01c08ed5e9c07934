package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pKa1/loveSonia/internal/model"
	"github.com/pKa1/loveSonia/pkg/log"
)

func newEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.Any("/t", func(c *gin.Context) {
		c.JSON(http.StatusOK, GetScope(c))
	})
	return r
}

func TestTelegramSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"NoSecretConfigured", "", "", http.StatusOK},
		{"Matching", "s3cret", "s3cret", http.StatusOK},
		{"Missing", "s3cret", "", http.StatusUnauthorized},
		{"Wrong", "s3cret", "guess", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(log.NewNop(), Config{TelegramSecret: tt.secret})
			r := newEngine(m.TelegramSecret())

			req := httptest.NewRequest(http.MethodPost, "/t", nil)
			if tt.header != "" {
				req.Header.Set(TelegramSecretHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second
	m := New(log.NewNop(), Config{RateLimitPerMin: 60})
	r := newEngine(m.RateLimit())

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		assert.Equal(t, http.StatusOK, do("1.2.3.4"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("1.2.3.4"))
	assert.Equal(t, http.StatusOK, do("5.6.7.8"), "other sources keep their own budget")
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0)
	assert.Equal(t, 3, rl.burst)

	small := NewRateLimiter(5)
	assert.Equal(t, 1, small.burst)
	assert.True(t, small.Allow("chat_1"))
	assert.False(t, small.Allow("chat_1"))
	assert.True(t, small.Allow("chat_2"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 198.51.100.7")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func TestScope(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newEngine(m.Scope())

	t.Run("Anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
		assert.Contains(t, w.Body.String(), `"`+model.AnonymousUserID+`"`)
	})

	t.Run("FromHeaders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set(UserIDHeader, " sonia ")
		req.Header.Set(UsernameHeader, "Соня")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), `"sonia"`)
		assert.Contains(t, w.Body.String(), `"Соня"`)
	})

	t.Run("WithoutMiddleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Equal(t, model.AnonymousUserID, GetScope(c).UserID)
	})
}
