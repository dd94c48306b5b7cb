package repository

import (
	"context"

	"Tripcast-App/internal/domain/model"
)

// PlaceSearchRepository はスポット検索プロバイダのインターフェース
type PlaceSearchRepository interface {
	// SearchPlaces は目的地とカテゴリでスポットを検索する。offset 件目以降を返し、空の場合もある
	SearchPlaces(ctx context.Context, location string, category model.Category, offset int) ([]model.Place, error)
}

// GeocodingRepository は地名を座標に変換するプロバイダのインターフェース
type GeocodingRepository interface {
	Geocode(ctx context.Context, location string) (model.LatLng, error)
}

// DirectionsRepository は1区間の経路探索プロバイダのインターフェース
// 1回だけ呼び出し、リトライはしない。失敗は *model.ProviderError で返す
type DirectionsRepository interface {
	GetDirections(ctx context.Context, req model.DirectionsRequest) (*model.DirectionsResult, error)
}

// WeatherRepository は天気プロバイダのインターフェース
type WeatherRepository interface {
	GetCurrentWeather(ctx context.Context, location string, point model.LatLng) (*model.WeatherSnapshot, error)
}

// WeatherCacheRepository は天気スナップショットのキャッシュ
// キャッシュミスは nil, nil
type WeatherCacheRepository interface {
	Get(ctx context.Context, location string) (*model.WeatherSnapshot, error)
	Set(ctx context.Context, location string, snapshot *model.WeatherSnapshot) error
}
