package service

import (
	"context"
	"log"
	"strings"
	"time"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/infrastructure/metrics"
)

const weatherProvider = "weather"

// WeatherService は目的地の現在の天気を返す。失敗することはなく、取得できない場合は推定値を返す
type WeatherService interface {
	GetWeather(ctx context.Context, location string) model.WeatherSnapshot
	// GetWeatherAt は解決済みの座標で天気を取得する。ジオコーディングはしない
	GetWeatherAt(ctx context.Context, location string, point model.LatLng) model.WeatherSnapshot
	// Locate は目的地の中心座標を返す
	Locate(ctx context.Context, location string) model.LatLng
}

type weatherService struct {
	geocoder    repository.GeocodingRepository
	weatherRepo repository.WeatherRepository
	cache       repository.WeatherCacheRepository
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewWeatherService は新しいWeatherServiceを作成する
// weatherRepo と cache は nil でもよい
func NewWeatherService(geocoder repository.GeocodingRepository, weatherRepo repository.WeatherRepository, cache repository.WeatherCacheRepository, m *metrics.Metrics) WeatherService {
	return &weatherService{
		geocoder:    geocoder,
		weatherRepo: weatherRepo,
		cache:       cache,
		metrics:     m,
		now:         time.Now,
	}
}

// EstimatedWeather は天気プロバイダが使えない場合の固定の推定値
func EstimatedWeather(location string, now time.Time) model.WeatherSnapshot {
	return model.WeatherSnapshot{
		Location:    location,
		Temperature: 18,
		Description: "구름 조금",
		IconCode:    "02d",
		Humidity:    60,
		WindSpeed:   2.0,
		IsEstimated: true,
		FetchedAt:   now,
	}
}

func (s *weatherService) Locate(ctx context.Context, location string) model.LatLng {
	if s.geocoder == nil {
		return model.SeoulCityHall
	}
	point, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		log.Printf("⚠️ 座標の取得に失敗したためソウル市庁を使用: location=%s, error=%v", location, err)
		return model.SeoulCityHall
	}
	return point
}

func (s *weatherService) GetWeather(ctx context.Context, location string) model.WeatherSnapshot {
	return s.fetch(ctx, strings.TrimSpace(location), func(key string) model.LatLng {
		return s.Locate(ctx, key)
	})
}

func (s *weatherService) GetWeatherAt(ctx context.Context, location string, point model.LatLng) model.WeatherSnapshot {
	return s.fetch(ctx, strings.TrimSpace(location), func(string) model.LatLng {
		return point
	})
}

// fetch はキャッシュ、プロバイダ、推定値の順に天気を探す。座標はプロバイダを呼ぶときだけ解決する
func (s *weatherService) fetch(ctx context.Context, key string, locate func(string) model.LatLng) model.WeatherSnapshot {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("⚠️ 天気キャッシュの取得に失敗: %v", err)
		} else if cached != nil {
			return *cached
		}
	}

	if s.weatherRepo == nil {
		s.metrics.RecordFallback(weatherProvider, model.ErrorKindNotConfigured)
		return EstimatedWeather(key, s.now())
	}

	point := locate(key)
	snapshot, err := s.weatherRepo.GetCurrentWeather(ctx, key, point)
	if err != nil || snapshot == nil {
		kind := model.KindOf(err)
		if err == nil {
			kind = model.ErrorKindMalformed
		}
		s.metrics.RecordFallback(weatherProvider, kind)
		log.Printf("⚠️ 天気の取得に失敗したため推定値を使用: location=%s, kind=%s, error=%v", key, kind, err)
		return EstimatedWeather(key, s.now())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, snapshot); err != nil {
			log.Printf("⚠️ 天気キャッシュの保存に失敗: %v", err)
		}
	}
	return *snapshot
}
