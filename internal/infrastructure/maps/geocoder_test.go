package maps

import (
	"context"
	"errors"
	"testing"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingGeocoder struct{ calls int }

func (f *failingGeocoder) Geocode(context.Context, string) (model.LatLng, error) {
	f.calls++
	return model.LatLng{}, errors.New("unavailable")
}

func TestFallbackGeocoder(t *testing.T) {
	g := NewFallbackGeocoder()

	p, err := g.Geocode(context.Background(), "제주")
	require.NoError(t, err)
	assert.Equal(t, model.KnownDestinations["제주"], p)

	p, err = g.Geocode(context.Background(), "부산 해운대")
	require.NoError(t, err)
	assert.Equal(t, model.KnownDestinations["부산"], p)

	_, err = g.Geocode(context.Background(), "Tokyo")
	assert.Equal(t, model.ErrorKindNotFound, model.KindOf(err))
}

func TestChainGeocoder(t *testing.T) {
	t.Run("最初に成功した結果を返す", func(t *testing.T) {
		first := &failingGeocoder{}
		chain := NewChainGeocoder(first, NewFallbackGeocoder())
		p, err := chain.Geocode(context.Background(), "강릉")
		require.NoError(t, err)
		assert.Equal(t, model.KnownDestinations["강릉"], p)
		assert.Equal(t, 1, first.calls)
	})

	t.Run("すべて失敗した場合はソウル市庁", func(t *testing.T) {
		chain := NewChainGeocoder(&failingGeocoder{}, NewFallbackGeocoder())
		p, err := chain.Geocode(context.Background(), "알 수 없는 곳")
		require.NoError(t, err)
		assert.Equal(t, model.SeoulCityHall, p)
	})
}
