package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Gopher0727/RaidLedger/config"
	"github.com/Gopher0727/RaidLedger/middleware/jwt"
	logger "github.com/Gopher0727/RaidLedger/middleware/log"
	"github.com/Gopher0727/RaidLedger/middleware/ratelimit"
)

type MiddlewareManager struct {
	tokenManager *jwt.TokenManager
	rateLimiter  ratelimit.Limiter
	log          *logger.Logger
	rateLimitCfg *config.RateLimitConfig
}

func NewMiddlewareManager(
	tokenManager *jwt.TokenManager,
	redisClient *redis.Client,
	log *logger.Logger,
	rateLimitCfg *config.RateLimitConfig,
) *MiddlewareManager {
	// Fail-open: a Redis outage must not take the API down with it
	rateLimiter := ratelimit.NewTokenBucketLimiter(redisClient, log.Logger, true)

	return &MiddlewareManager{
		tokenManager: tokenManager,
		rateLimiter:  rateLimiter,
		log:          log,
		rateLimitCfg: rateLimitCfg,
	}
}

func (m *MiddlewareManager) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authorization header required",
				"code":  "unauthorized",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header format",
				"code":  "unauthorized",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenManager.ParseToken(parts[1])
		if err != nil {
			m.log.Warn("token validation failed",
				zap.String("error", err.Error()),
				zap.String("ip", c.ClientIP()),
			)

			var message string
			switch err {
			case jwt.ErrExpiredToken:
				message = "token has expired"
			case jwt.ErrTokenNotYetValid:
				message = "token not yet valid"
			default:
				message = "invalid token"
			}

			c.JSON(http.StatusUnauthorized, gin.H{
				"error": message,
				"code":  "unauthorized",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.UserName)

		c.Next()
	}
}

func (m *MiddlewareManager) RateLimiterByEndpoint(endpoint string) gin.HandlerFunc {
	rule := ratelimit.GetRuleForEndpoint(endpoint, &ratelimit.Config{
		RegisterPerMinute: m.rateLimitCfg.RegisterPerMinute,
		LoginPerMinute:    m.rateLimitCfg.LoginPerMinute,
		APIPerMinute:      m.rateLimitCfg.APIPerMinute,
	})

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// Key on user when authenticated, IP otherwise
		var key string
		if userID, exists := c.Get("user_id"); exists {
			key = fmt.Sprintf("user:%s:%s", userID, endpoint)
		} else {
			key = fmt.Sprintf("ip:%s:%s", c.ClientIP(), endpoint)
		}

		allowed, err := m.rateLimiter.Allow(ctx, key, rule.Limit, rule.Window)
		if err != nil {
			// The limiter is fail-open; a check error never blocks the request
			m.log.Error("rate limit check failed",
				zap.String("error", err.Error()),
				zap.String("key", key),
				zap.String("endpoint", endpoint),
			)
			c.Next()
			return
		}

		if !allowed {
			remaining, _ := m.rateLimiter.GetRemaining(ctx, key, rule.Limit, rule.Window)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"code":        "rate_limited",
				"retry_after": int(rule.Window.Seconds()),
				"remaining":   remaining,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *MiddlewareManager) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		userID, _ := c.Get("user_id")

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", statusCode),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if userID != nil {
			fields = append(fields, zap.String("user_id", userID.(string)))
		}

		if statusCode >= 500 {
			m.log.Error("server error", fields...)
		} else if statusCode >= 400 {
			m.log.Warn("client error", fields...)
		} else {
			m.log.Info("request completed", fields...)
		}
	}
}

func (m *MiddlewareManager) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (m *MiddlewareManager) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.log.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)

				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
					"code":  "internal",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
