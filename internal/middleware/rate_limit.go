package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts = 5
	APIMaxRequests   = 100 // por minuto, por IP
	SearchMaxPerMin  = 30
	BotMaxPerMin     = 60

	LoginCooldown = 15 * time.Minute
	APICooldown   = 1 * time.Minute
)

// RateLimiter implementa limites de requisição com contadores no Redis.
type RateLimiter struct {
	redis *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{redis: rdb}
}

func (r *RateLimiter) countAndCheck(ctx context.Context, key string, max int, window time.Duration) (int, bool) {
	requests, _ := r.redis.Get(ctx, key).Int()
	if requests >= max {
		return requests, false
	}

	pipe := r.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	pipe.Exec(ctx)

	return requests, true
}

// API limita requisições gerais por IP.
func (r *RateLimiter) API() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "api_requests:" + c.ClientIP()

		requests, ok := r.countAndCheck(ctx, key, APIMaxRequests, APICooldown)
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Muitas requisições. Tente novamente em 1 minuto",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests-1))
		c.Next()
	}
}

// Search limita buscas da vitrine por IP.
func (r *RateLimiter) Search() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("search") == "" {
			c.Next()
			return
		}

		key := "search_requests:" + c.ClientIP()
		if _, ok := r.countAndCheck(c.Request.Context(), key, SearchMaxPerMin, APICooldown); !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Muitas buscas. Tente novamente em 1 minuto",
				"retry_after": 60,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Bot limita a API do bot por IP. A resposta segue o envelope {ok, mensagem}.
func (r *RateLimiter) Bot() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "bot_requests:" + c.ClientIP()
		if _, ok := r.countAndCheck(c.Request.Context(), key, BotMaxPerMin, APICooldown); !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"ok":       false,
				"mensagem": "Muitas requisições. Tente novamente em 1 minuto.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Login limita tentativas de login por e-mail, com cooldown após exceder.
func (r *RateLimiter) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email"`
		}
		bodyBytes, err := c.GetRawData()
		if err != nil || len(bodyBytes) == 0 {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		if jsonErr := json.Unmarshal(bodyBytes, &input); jsonErr != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "login_attempts:" + input.Email
		cooldownKey := "login_cooldown:" + input.Email

		if r.redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := r.redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitas tentativas. Tente novamente em %d minutos", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := r.redis.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			r.redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			r.redis.Del(ctx, key)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitas tentativas. Bloqueado por %d minutos", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			r.redis.Incr(ctx, key)
			r.redis.Expire(ctx, key, LoginCooldown)
		case http.StatusOK:
			r.redis.Del(ctx, key)
			r.redis.Del(ctx, cooldownKey)
		}
	}
}
