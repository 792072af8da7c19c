package middleware

import (
	"net/http"
	"strings"

	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const callerContextKey = "caller"

// RequireAuth validates the bearer token and resolves the caller into the
// request context. Identity is served from the Redis cache when warm, falling
// back to a DB lookup that repopulates the cache.
func RequireAuth(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := resolveCaller(c, users)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid bearer token is present and
// continues anonymously otherwise.
func OptionalAuth(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller, ok := resolveCaller(c, users); ok {
			c.Set(callerContextKey, caller)
		}
		c.Next()
	}
}

// CallerFromContext returns the resolved caller set by RequireAuth or
// OptionalAuth.
func CallerFromContext(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(callerContextKey)
	if !exists {
		return models.User{}, false
	}
	caller, ok := val.(models.User)
	return caller, ok
}

func resolveCaller(c *gin.Context, users userRepo.UserRepository) (models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return models.User{}, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return models.User{}, false
	}

	_, email, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil || email == "" {
		return models.User{}, false
	}

	ctx := c.Request.Context()

	if cached := utils.LookupIdentity(ctx, email); cached != nil {
		return *cached, true
	}

	usr, err := users.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("identity lookup failed", zap.String("email", email), zap.Error(err))
		return models.User{}, false
	}
	if usr == nil {
		return models.User{}, false
	}

	utils.CacheIdentity(ctx, usr)
	return *usr, true
}
