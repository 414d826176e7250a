package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Leaderboard caching will be disabled.", err)
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// CheckRateLimit is a best-effort counter used by the reminder trigger to
// keep a misfiring cron from hammering the push provider. Fails open when
// Redis is down.
func CheckRateLimit(key string, limit int, duration time.Duration) (bool, error) {
	if Redis == nil {
		return true, nil
	}
	fullKey := fmt.Sprintf("rate_limit:%s", key)
	count, err := Redis.Incr(Ctx, fullKey).Result()
	if err != nil {
		return true, err
	}

	if count == 1 {
		Redis.Expire(Ctx, fullKey, duration)
	}

	return count <= int64(limit), nil
}

// CacheSet stores a JSON-encoded value with an expiration.
func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

// CacheGet loads a JSON-encoded value into dest.
func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return redis.Nil
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// CacheInvalidate deletes every key matching the pattern.
func CacheInvalidate(pattern string) error {
	if Redis == nil {
		return nil
	}
	keys, err := Redis.Keys(Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return Redis.Del(Ctx, keys...).Err()
	}
	return nil
}
