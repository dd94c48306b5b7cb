package maps

import (
	"context"
	"fmt"
	"time"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"

	"github.com/patrickmn/go-cache"
)

// DefaultDirectionsCacheTTL は経路探索結果の保持時間
const DefaultDirectionsCacheTTL = 30 * time.Minute

// CachedDirectionsProvider は成功した経路探索の結果をメモリに保持する
// 失敗とプロバイダ自身の推定値は保持しない
type CachedDirectionsProvider struct {
	next  repository.DirectionsRepository
	cache *cache.Cache
}

// NewCachedDirectionsProvider は新しいCachedDirectionsProviderを生成する
func NewCachedDirectionsProvider(next repository.DirectionsRepository, ttl time.Duration) *CachedDirectionsProvider {
	if ttl <= 0 {
		ttl = DefaultDirectionsCacheTTL
	}
	return &CachedDirectionsProvider{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedDirectionsProvider) GetDirections(ctx context.Context, req model.DirectionsRequest) (*model.DirectionsResult, error) {
	key := directionsCacheKey(req)
	if cached, found := c.cache.Get(key); found {
		result := cached.(model.DirectionsResult)
		return &result, nil
	}

	result, err := c.next.GetDirections(ctx, req)
	if err != nil {
		return nil, err
	}
	if result != nil && !result.IsFallback {
		c.cache.SetDefault(key, *result)
	}
	return result, nil
}

// directionsCacheKey は座標を小数5桁（約1m）で丸めたキーを作る
func directionsCacheKey(req model.DirectionsRequest) string {
	return fmt.Sprintf("%s|%s|%.5f,%.5f|%.5f,%.5f",
		req.Mode, req.Priority,
		req.Origin.Lat, req.Origin.Lng,
		req.Destination.Lat, req.Destination.Lng)
}
