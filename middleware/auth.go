package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "mandry/database/repository/user"
	"mandry/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates requests via Bearer token. A Redis cache
// of token hashes short-circuits the account lookup; on a miss the account
// is fetched from the store and the cache re-seeded. The cache is an
// accelerator only: when Redis is unavailable the request falls through to
// the store.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.AuthCacheClient
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedHash == computedHash {
				// Fast path: refresh TTL and continue.
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed, falling back to store",
					zap.Error(err))
			}
		}

		// Cache miss: the token already validated, confirm the account
		// still exists.
		account, err := users.GetByID(userID)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// RequireAdmin allows only accounts with the admin role past. It must run
// after JWTAuthMiddleware.
func RequireAdmin(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		account, err := users.GetByID(userID)
		if err != nil || account == nil || !account.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
