package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ola007-cpu/webApp/config"
)

var ErrCacheMiss = errors.New("key not found in cache")

// VideoCacheTTL bounds how stale a cached video record may get.
const VideoCacheTTL = 10 * time.Minute

type RedisClient struct {
	Client *redis.Client
}

// InitRedisClient connects the shared Redis cache. Redis is optional:
// without REDIS_HOST the service runs uncached and the consumer binary
// has nothing to warm.
func InitRedisClient(cfg *config.EnvConfig) *RedisClient {
	if cfg.Redis.RedisHost == "" {
		log.Println("Redis not configured, metadata cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.RedisHost + ":" + cfg.Redis.RedisPort,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}

	log.Println("Connected to Redis:", cfg.Redis.RedisHost+":"+cfg.Redis.RedisPort)

	return &RedisClient{Client: client}
}

// VideoCacheKey is the cache slot for one video's stored record. Only
// the persisted record is cached, never a signed URL.
func VideoCacheKey(videoID string) string {
	return "video:meta:" + videoID
}

func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisClient) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	return r.Client.Del(ctx, keys...).Err()
}

func (r *RedisClient) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
