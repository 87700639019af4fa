package utils

import (
	"context"
	"log"
	"time"

	"hospitality/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// OTPCacheClient is the dedicated client for verification codes.
	OTPCacheClient *redis.Client
	// AIContextCacheClient holds concierge conversation context.
	AIContextCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitOTPCache initializes the Redis client for verification codes.
func InitOTPCache() {
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
}

// GetOTPCacheClient returns the Redis client for verification codes.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}

// InitAIContextCache initializes the Redis client for concierge context.
func InitAIContextCache() {
	AIContextCacheClient = newRedisClient(config.AppConfig.RedisAIContextDB)
}

// GetAIContextCacheClient returns the Redis client for concierge context.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		InitAIContextCache()
	}
	return AIContextCacheClient
}
