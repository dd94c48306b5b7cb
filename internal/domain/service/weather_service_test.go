package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWeatherService_GetWeather(t *testing.T) {
	busan := model.LatLng{Lat: 35.1796, Lng: 129.0756}

	t.Run("プロバイダの結果を返し、キャッシュする", func(t *testing.T) {
		geocoder := new(mockGeocodingRepository)
		geocoder.On("Geocode", mock.Anything, "부산").Return(busan, nil).Once()
		provider := new(mockWeatherRepository)
		provider.On("GetCurrentWeather", mock.Anything, "부산", busan).
			Return(&model.WeatherSnapshot{Location: "부산", Temperature: 24.5, IconCode: "10d"}, nil).Once()
		cache := newMemoryWeatherCache()

		svc := NewWeatherService(geocoder, provider, cache, nil)
		first := svc.GetWeather(context.Background(), "부산")
		second := svc.GetWeather(context.Background(), "부산")

		assert.Equal(t, "10d", first.IconCode)
		assert.False(t, first.IsEstimated)
		assert.Equal(t, first, second)
		provider.AssertNumberOfCalls(t, "GetCurrentWeather", 1)
	})

	t.Run("プロバイダが失敗した場合は推定値", func(t *testing.T) {
		geocoder := new(mockGeocodingRepository)
		geocoder.On("Geocode", mock.Anything, mock.Anything).Return(model.LatLng{}, errors.New("no result"))
		provider := new(mockWeatherRepository)
		provider.On("GetCurrentWeather", mock.Anything, "어딘가", model.SeoulCityHall).
			Return(nil, model.NewProviderError("openweather", model.ErrorKindUnavailable, errors.New("500")))

		svc := NewWeatherService(geocoder, provider, nil, nil)
		got := svc.GetWeather(context.Background(), "어딘가")

		assert.True(t, got.IsEstimated)
		assert.Equal(t, "02d", got.IconCode)
		assert.Equal(t, 18.0, got.Temperature)
		assert.Equal(t, "구름 조금", got.Description)
		provider.AssertExpectations(t)
	})

	t.Run("プロバイダ未設定でも推定値を返す", func(t *testing.T) {
		svc := NewWeatherService(nil, nil, nil, nil)
		got := svc.GetWeather(context.Background(), "제주")
		assert.Equal(t, EstimatedWeather("제주", got.FetchedAt), got)
	})
}

func TestWeatherService_GetWeatherAt(t *testing.T) {
	gangneung := model.LatLng{Lat: 37.7519, Lng: 128.8761}
	geocoder := new(mockGeocodingRepository)
	provider := new(mockWeatherRepository)
	provider.On("GetCurrentWeather", mock.Anything, "강릉", gangneung).
		Return(&model.WeatherSnapshot{Location: "강릉", Temperature: 9, IconCode: "13d"}, nil).Once()

	svc := NewWeatherService(geocoder, provider, nil, nil)
	got := svc.GetWeatherAt(context.Background(), " 강릉 ", gangneung)

	assert.Equal(t, "13d", got.IconCode)
	provider.AssertExpectations(t)
	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestEstimatedWeather(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	w := EstimatedWeather("서울", now)
	assert.Equal(t, 60, w.Humidity)
	assert.Equal(t, 2.0, w.WindSpeed)
	assert.Equal(t, model.WeatherFamilyClear, w.Family())
	assert.Equal(t, now, w.FetchedAt)
}
