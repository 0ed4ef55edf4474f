package middleware

import (
	"context"
	"net/http"
	"strings"

	"venuehive/models"
	"venuehive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware extracts the authenticated actor from a Bearer token and
// stores it in the request context. Token issuance belongs to the identity
// service; revocation is a redis blacklist keyed by token hash.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, email, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// Revoked tokens stay invalid until expiry. A cache outage fails
		// open; signature and expiry were already checked.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			key := utils.AuthCachePrefix + utils.HashToken(tokenString)
			if n, err := authCache.Exists(context.Background(), key).Result(); err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token revoked",
					"code":  0,
				})
				return
			} else if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, continuing without revocation check")
			}
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

// ActorFromContext rebuilds the actor identity the auth middleware stored.
func ActorFromContext(c *gin.Context) models.Actor {
	return models.Actor{
		ID:    c.GetString("userID"),
		Email: c.GetString("email"),
	}
}
