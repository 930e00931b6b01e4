// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"slotwise/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds editing sessions between requests.
	SessionCacheClient *redis.Client
	// ScheduleCacheClient is the read-cache for persisted shop schedules.
	ScheduleCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for editing-session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for editing sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitScheduleCache initializes the Redis client for the schedule read-cache.
func InitScheduleCache() {
	ScheduleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisScheduleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ScheduleCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Schedule Cache): %v", err)
	}
}

// GetScheduleCacheClient returns the Redis client for the schedule read-cache.
func GetScheduleCacheClient() *redis.Client {
	if ScheduleCacheClient == nil {
		InitScheduleCache()
	}
	return ScheduleCacheClient
}
