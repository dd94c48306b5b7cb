package service

import (
	"context"
	"errors"
	"testing"

	"Tripcast-App/internal/domain/helper"
	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	placeA = model.Place{ID: "A", Name: "서울시청", Lat: 37.5665, Lng: 126.9780}
	placeB = model.Place{ID: "B", Name: "N서울타워", Lat: 37.5512, Lng: 126.9882}
	placeC = model.Place{ID: "C", Name: "경복궁", Lat: 37.5796, Lng: 126.9770}
)

func fromPlace(id string) interface{} {
	return mock.MatchedBy(func(req model.DirectionsRequest) bool {
		for _, p := range []model.Place{placeA, placeB, placeC} {
			if p.ID == id {
				return req.Origin == p.ToLatLng()
			}
		}
		return false
	})
}

func intPtr(v int) *int { return &v }

func TestBuildRoute(t *testing.T) {
	for _, concurrency := range []int{1, 3} {
		repo := new(mockDirectionsRepository)
		repo.On("GetDirections", mock.Anything, fromPlace("A")).
			Return(&model.DirectionsResult{DistanceMeters: 2500, DurationSeconds: 900, Fare: intPtr(4800)}, nil)
		repo.On("GetDirections", mock.Anything, fromPlace("B")).
			Return(nil, model.NewProviderError("kakao", model.ErrorKindUnavailable, errors.New("502")))

		svc := NewRouteAggregationService(repo, DefaultDurationPolicy(), concurrency, nil)
		route, err := svc.BuildRoute(context.Background(), []model.Place{placeA, placeB, placeC}, model.TransportModeCar)
		require.NoError(t, err)
		require.NotNil(t, route)

		t.Run("区間は連続する2スポットごとに順番どおり", func(t *testing.T) {
			require.Len(t, route.Segments, 2)
			assert.Equal(t, "A", route.Segments[0].FromPlaceID)
			assert.Equal(t, "B", route.Segments[0].ToPlaceID)
			assert.Equal(t, "B", route.Segments[1].FromPlaceID)
			assert.Equal(t, "C", route.Segments[1].ToPlaceID)
		})

		t.Run("失敗した区間は直線距離で推定される", func(t *testing.T) {
			seg := route.Segments[1]
			want := helper.EstimateDistance(placeB.ToLatLng(), placeC.ToLatLng())
			assert.True(t, seg.IsEstimated)
			assert.InDelta(t, want, seg.DistanceMeters, 1e-9)
			assert.InDelta(t, want/50*60, seg.DurationSeconds, 1e-9)
			assert.False(t, route.Segments[0].IsEstimated)
			assert.True(t, route.HasEstimatedSegments)
		})

		t.Run("合計は区間の和", func(t *testing.T) {
			var distance, duration float64
			for _, s := range route.Segments {
				distance += s.DistanceMeters
				duration += s.DurationSeconds
			}
			assert.InDelta(t, distance, route.TotalDistanceMeters, 1e-9)
			assert.InDelta(t, duration, route.TotalDurationSeconds, 1e-9)
			require.NotNil(t, route.TotalFare)
			assert.Equal(t, 4800, *route.TotalFare)
			assert.Equal(t, helper.FormatDistance(route.TotalDistanceMeters), route.TotalDistanceText)
			assert.Equal(t, LabelHalfDay, route.RecommendedDurationLabel)
		})

		t.Run("移動手段から優先条件が決まる", func(t *testing.T) {
			for _, call := range repo.Calls {
				req := call.Arguments.Get(1).(model.DirectionsRequest)
				assert.Equal(t, model.PriorityRecommend, req.Priority)
				assert.Equal(t, model.TransportModeCar, req.Mode)
			}
		})
	}
}

func TestBuildRoute_FewerThanTwoPlaces(t *testing.T) {
	repo := new(mockDirectionsRepository)
	svc := NewRouteAggregationService(repo, DefaultDurationPolicy(), 1, nil)

	route, err := svc.BuildRoute(context.Background(), []model.Place{placeA}, model.TransportModeWalk)
	assert.NoError(t, err)
	assert.Nil(t, route)

	route, err = svc.BuildRoute(context.Background(), nil, model.TransportModeWalk)
	assert.NoError(t, err)
	assert.Nil(t, route)
	repo.AssertNotCalled(t, "GetDirections", mock.Anything, mock.Anything)
}

func TestDurationPolicy_Label(t *testing.T) {
	p := DefaultDurationPolicy()

	assert.Equal(t, LabelHalfDay, p.Label(120*60, 4))
	assert.Equal(t, LabelFullDay, p.Label(121*60, 4))
	assert.Equal(t, LabelFullDay, p.Label(30*60, 5))

	custom := DurationPolicy{HalfDayMaxTravelMinutes: 60, HalfDayMaxPlaces: 4}
	assert.Equal(t, LabelFullDay, custom.Label(90*60, 3))
}
