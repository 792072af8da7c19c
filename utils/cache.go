// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"glowbook/config"
	"glowbook/models"

	"github.com/go-redis/redis/v8"
)

// IdentityCacheClient is the dedicated client for resolved-caller caching.
var IdentityCacheClient *redis.Client

// InitIdentityCache initializes the Redis client for identity caching.
func InitIdentityCache() {
	IdentityCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisIdentityDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := IdentityCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Identity Cache): %v", err)
	}
}

// GetIdentityCacheClient returns the Redis client for identity caching.
func GetIdentityCacheClient() *redis.Client {
	if IdentityCacheClient == nil {
		InitIdentityCache()
	}
	return IdentityCacheClient
}

// CacheIdentity stores a resolved user keyed by email.
func CacheIdentity(ctx context.Context, user *models.User) {
	b, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = GetIdentityCacheClient().Set(ctx, IdentityCachePrefix+user.Email, b, IdentityCacheTTL).Err()
}

// LookupIdentity fetches a cached resolved user by email. Returns nil on miss.
func LookupIdentity(ctx context.Context, email string) *models.User {
	val, err := GetIdentityCacheClient().Get(ctx, IdentityCachePrefix+email).Result()
	if err != nil {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil
	}
	return &user
}

// RedisIdentityInvalidator evicts cached identities after role or profile
// changes so the next request re-resolves from the database.
type RedisIdentityInvalidator struct{}

func (RedisIdentityInvalidator) Invalidate(ctx context.Context, email string) error {
	return GetIdentityCacheClient().Del(ctx, IdentityCachePrefix+email).Err()
}
