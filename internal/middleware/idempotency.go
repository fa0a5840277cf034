package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency replays the cached response when a POST carries an
// Idempotency-Key the caller already used. A short-lived lock rejects the
// concurrent duplicate while the first request is still in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		subject := ""
		if actor, ok := GetActor(c); ok {
			subject = actor.Email
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), subject, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			json.Unmarshal([]byte(val), &cachedRes)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"status": "success", "data": cachedRes})
			return
		}

		// Lock expires on its own so a crashed request cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is still being processed",
			})
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// StoreIdempotentResult caches the handler's response body for later replays
// and releases the in-flight lock.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, result any, ttl time.Duration) {
	cacheKey := c.GetString(IdempotencyCacheKey)
	lockKey := c.GetString(IdempotencyLockKey)
	if cacheKey == "" || rdb == nil {
		return
	}

	if payload, err := json.Marshal(result); err == nil {
		rdb.Set(c.Request.Context(), cacheKey, payload, ttl)
	}
	if lockKey != "" {
		rdb.Del(c.Request.Context(), lockKey)
	}
}
