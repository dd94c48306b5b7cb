package repository

import (
	"testing"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteBoundsWKT(t *testing.T) {
	places := []model.Place{
		{ID: "a", Lat: 37.5665, Lng: 126.9780},
		{ID: "b", Lat: 37.5512, Lng: 126.9882},
	}

	s := RouteBoundsWKT(places)
	require.NotEmpty(t, s)
	assert.Contains(t, s, "POLYGON")

	bound, err := ParseRouteBounds(s)
	require.NoError(t, err)
	assert.InDelta(t, 126.9780-routeBoundsPadding, bound.Min.Lon(), 1e-9)
	assert.InDelta(t, 37.5512-routeBoundsPadding, bound.Min.Lat(), 1e-9)
	assert.InDelta(t, 126.9882+routeBoundsPadding, bound.Max.Lon(), 1e-9)
	assert.InDelta(t, 37.5665+routeBoundsPadding, bound.Max.Lat(), 1e-9)

	assert.Empty(t, RouteBoundsWKT(nil))
}
