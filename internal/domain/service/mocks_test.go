package service

import (
	"context"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type mockPlaceSearchRepository struct {
	mock.Mock
}

func (m *mockPlaceSearchRepository) SearchPlaces(ctx context.Context, location string, category model.Category, offset int) ([]model.Place, error) {
	args := m.Called(ctx, location, category, offset)
	places, _ := args.Get(0).([]model.Place)
	return places, args.Error(1)
}

type mockDirectionsRepository struct {
	mock.Mock
}

func (m *mockDirectionsRepository) GetDirections(ctx context.Context, req model.DirectionsRequest) (*model.DirectionsResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*model.DirectionsResult)
	return result, args.Error(1)
}

type mockGeocodingRepository struct {
	mock.Mock
}

func (m *mockGeocodingRepository) Geocode(ctx context.Context, location string) (model.LatLng, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(model.LatLng), args.Error(1)
}

type mockWeatherRepository struct {
	mock.Mock
}

func (m *mockWeatherRepository) GetCurrentWeather(ctx context.Context, location string, point model.LatLng) (*model.WeatherSnapshot, error) {
	args := m.Called(ctx, location, point)
	snapshot, _ := args.Get(0).(*model.WeatherSnapshot)
	return snapshot, args.Error(1)
}

// memoryWeatherCache はテスト用のキャッシュ
type memoryWeatherCache struct {
	items map[string]model.WeatherSnapshot
}

func newMemoryWeatherCache() *memoryWeatherCache {
	return &memoryWeatherCache{items: map[string]model.WeatherSnapshot{}}
}

func (c *memoryWeatherCache) Get(_ context.Context, location string) (*model.WeatherSnapshot, error) {
	s, ok := c.items[location]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (c *memoryWeatherCache) Set(_ context.Context, location string, snapshot *model.WeatherSnapshot) error {
	c.items[location] = *snapshot
	return nil
}
