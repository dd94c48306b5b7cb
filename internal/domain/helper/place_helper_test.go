package helper

import (
	"testing"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

var (
	seoulCityHall = model.LatLng{Lat: 37.5665, Lng: 126.9780}
	nSeoulTower   = model.LatLng{Lat: 37.5512, Lng: 126.9882}
)

func TestEstimateDistance(t *testing.T) {
	t.Run("ソウル市庁からNソウルタワーまで約1.9km", func(t *testing.T) {
		// 地球半径 6,371,000m での大円距離
		assert.InDelta(t, 1924.0, EstimateDistance(seoulCityHall, nSeoulTower), 10)
	})

	t.Run("対称", func(t *testing.T) {
		assert.Equal(t, EstimateDistance(seoulCityHall, nSeoulTower), EstimateDistance(nSeoulTower, seoulCityHall))
	})

	t.Run("同一地点は0", func(t *testing.T) {
		assert.Equal(t, 0.0, EstimateDistance(seoulCityHall, seoulCityHall))
	})
}

func TestEstimateWalkingDurationSeconds(t *testing.T) {
	// 分速50m
	assert.Equal(t, 60.0, EstimateWalkingDurationSeconds(50))
	assert.Equal(t, 1200.0, EstimateWalkingDurationSeconds(1000))
}

func TestSortHelpers(t *testing.T) {
	places := []model.Place{
		{ID: "a", WeatherScore: 1, Rating: 4.9},
		{ID: "b", WeatherScore: 10, Rating: 4.0, Locked: true},
		{ID: "c", WeatherScore: 10, Rating: 4.5},
		{ID: "d", WeatherScore: 6, Rating: 4.5, Locked: true},
	}

	byScore := ClonePlaces(places)
	SortByWeatherScore(byScore)
	assert.Equal(t, []string{"b", "c", "d", "a"}, model.PlaceIDs(byScore))

	byRating := ClonePlaces(places)
	SortByRating(byRating)
	assert.Equal(t, []string{"a", "c", "d", "b"}, model.PlaceIDs(byRating))

	lockedFirst := ClonePlaces(places)
	SortLockedFirst(lockedFirst)
	assert.Equal(t, []string{"b", "d", "a", "c"}, model.PlaceIDs(lockedFirst))

	assert.True(t, SameIDSequence(places, ClonePlaces(places)))
	assert.False(t, SameIDSequence(places, byScore))
	assert.Equal(t, 2, FindByID(places, "c"))
	assert.Equal(t, -1, FindByID(places, "z"))
	assert.True(t, ContainsID(places, "d"))
}
