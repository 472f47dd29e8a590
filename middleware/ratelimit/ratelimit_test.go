package ratelimit

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

func TestTokenBucketLimiter_Allow(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewTokenBucketLimiter(client, zap.NewNop(), false)

	ctx := context.Background()
	key := "test:user:123"
	limit := 5
	window := time.Minute

	// First 5 requests should be allowed
	for i := range limit {
		allowed, err := limiter.Allow(ctx, key, limit, window)
		assert.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	// 6th request should be denied
	allowed, err := limiter.Allow(ctx, key, limit, window)
	assert.NoError(t, err)
	assert.False(t, allowed, "request should be denied after limit exceeded")
}

func TestTokenBucketLimiter_SeparateKeys(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewTokenBucketLimiter(client, zap.NewNop(), false)
	ctx := context.Background()

	// Exhaust the budget for one key
	for range 3 {
		allowed, err := limiter.Allow(ctx, "user:a", 3, time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "user:a", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Another key is unaffected
	allowed, err = limiter.Allow(ctx, "user:b", 3, time.Minute)
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestTokenBucketLimiter_Reset(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewTokenBucketLimiter(client, zap.NewNop(), false)
	ctx := context.Background()
	key := "test:user:reset"

	for range 5 {
		_, err := limiter.Allow(ctx, key, 5, time.Minute)
		require.NoError(t, err)
	}
	allowed, err := limiter.Allow(ctx, key, 5, time.Minute)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, key))

	allowed, err = limiter.Allow(ctx, key, 5, time.Minute)
	assert.NoError(t, err)
	assert.True(t, allowed, "request should be allowed after reset")
}

func TestTokenBucketLimiter_GetRemaining(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewTokenBucketLimiter(client, zap.NewNop(), false)
	ctx := context.Background()
	key := "test:user:remaining"

	remaining, err := limiter.GetRemaining(ctx, key, 10, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 10, remaining, "all tokens available before any request")

	for range 4 {
		_, err := limiter.Allow(ctx, key, 10, time.Minute)
		require.NoError(t, err)
	}

	remaining, err = limiter.GetRemaining(ctx, key, 10, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 6, remaining)
}

func TestTokenBucketLimiter_FailOpen(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer client.Close()

	// Kill redis so every pipeline call fails
	mr.Close()

	t.Run("fallback enabled allows requests", func(t *testing.T) {
		limiter := NewTokenBucketLimiter(client, zap.NewNop(), true)
		allowed, err := limiter.Allow(context.Background(), "k", 5, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("fallback disabled returns error", func(t *testing.T) {
		limiter := NewTokenBucketLimiter(client, zap.NewNop(), false)
		allowed, err := limiter.Allow(context.Background(), "k", 5, time.Minute)
		assert.Error(t, err)
		assert.False(t, allowed)
	})
}

func TestGetRuleForEndpoint(t *testing.T) {
	cfg := &Config{
		RegisterPerMinute: 5,
		LoginPerMinute:    10,
		APIPerMinute:      120,
	}

	tests := []struct {
		endpoint string
		want     Rule
	}{
		{"register", Rule{Limit: 5, Window: time.Minute}},
		{"login", Rule{Limit: 10, Window: time.Minute}},
		{"api", Rule{Limit: 120, Window: time.Minute}},
		{"unknown", Rule{Limit: 100, Window: time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, GetRuleForEndpoint(tt.endpoint, cfg))
		})
	}
}
