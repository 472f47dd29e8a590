package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopher0727/RaidLedger/config"
	"github.com/Gopher0727/RaidLedger/middleware/jwt"
	logger "github.com/Gopher0727/RaidLedger/middleware/log"
)

func newTestManager(t *testing.T) (*MiddlewareManager, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log, err := logger.NewDevelopmentLogger()
	require.NoError(t, err)

	tokenManager := jwt.NewTokenManager("test-secret", 24, 168)
	return NewMiddlewareManager(tokenManager, client, log, &config.RateLimitConfig{
		RegisterPerMinute: 3,
		LoginPerMinute:    3,
		APIPerMinute:      100,
	}), mr
}

func newTestRouter(mw *MiddlewareManager, endpoint string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimiterByEndpoint(endpoint), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestJWTAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	mw, mr := newTestManager(t)
	defer mr.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
		})
	}
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	mw, mr := newTestManager(t)
	defer mr.Close()

	token, err := mw.tokenManager.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRateLimiterByEndpointBlocksAfterLimit(t *testing.T) {
	mw, mr := newTestManager(t)
	defer mr.Close()

	r := newTestRouter(mw, "login")

	for i := range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"rate_limited"`)
}

func TestRateLimiterByEndpointFailOpen(t *testing.T) {
	mw, mr := newTestManager(t)

	// A redis outage must let traffic through
	mr.Close()

	r := newTestRouter(mw, "api")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
