package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
)

// DefaultWeatherCacheTTL は天気の保持時間
const DefaultWeatherCacheTTL = 10 * time.Minute

// RedisWeatherCache Redisを使用した天気キャッシュ
type RedisWeatherCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisWeatherCache 新しいRedisWeatherCacheインスタンスを作成
func NewRedisWeatherCache(client *redis.Client, ttl time.Duration) repository.WeatherCacheRepository {
	if ttl <= 0 {
		ttl = DefaultWeatherCacheTTL
	}
	return &RedisWeatherCache{client: client, ttl: ttl}
}

func weatherKey(location string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(location))
}

// Get はキャッシュを取得する。キャッシュミスは nil, nil
func (c *RedisWeatherCache) Get(ctx context.Context, location string) (*model.WeatherSnapshot, error) {
	val, err := c.client.Get(ctx, weatherKey(location)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("天気キャッシュの取得に失敗 (%s): %w", location, err)
	}

	var snapshot model.WeatherSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, fmt.Errorf("天気キャッシュのJSONアンマーシャル失敗 (%s): %w", location, err)
	}
	return &snapshot, nil
}

func (c *RedisWeatherCache) Set(ctx context.Context, location string, snapshot *model.WeatherSnapshot) error {
	if snapshot == nil || snapshot.IsEstimated {
		return nil
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("天気のJSONマーシャル失敗 (%s): %w", location, err)
	}
	if err := c.client.Set(ctx, weatherKey(location), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("天気キャッシュの保存に失敗 (%s): %w", location, err)
	}
	return nil
}
