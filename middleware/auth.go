package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	userRepo "staybook/database/repository/user"
	"staybook/utils"
)

// JWTAuthUserMiddleware validates the bearer token, checks it against the
// stored token hash (auth cache first, user record on miss) and puts the
// user ID into the request context.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		ctx := c.Request.Context()
		cacheKey := "auth:" + userID
		storedHash, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
		if err == redis.Nil || (err == nil && storedHash == "") {
			u, repoErr := repo.GetByID(ctx, userID)
			if repoErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			storedHash = u.TokenHash
			utils.GetAuthCacheClient().Set(ctx, cacheKey, storedHash, time.Hour)
		} else if err != nil {
			// Cache down: fall back to the user record.
			u, repoErr := repo.GetByID(ctx, userID)
			if repoErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			storedHash = u.TokenHash
		}

		if storedHash == "" || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
