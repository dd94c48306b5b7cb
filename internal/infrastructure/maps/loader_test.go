package maps

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmaps "googlemaps.github.io/maps"
)

func TestMapProvider_Load(t *testing.T) {
	t.Run("同時のLoadは1回の生成にまとめられる", func(t *testing.T) {
		var calls int32
		release := make(chan struct{})
		p := newMapProviderWithFactory(func() (*gmaps.Client, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return gmaps.NewClient(gmaps.WithAPIKey("AIza-test"))
		})
		assert.Equal(t, StateUnloaded, p.State())

		var wg sync.WaitGroup
		states := make([]LoadState, 5)
		for i := range states {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				states[i] = p.Load(context.Background())
			}(i)
		}

		require.Eventually(t, func() bool { return p.State() == StateLoading }, time.Second, time.Millisecond)
		close(release)
		wg.Wait()

		for _, s := range states {
			assert.Equal(t, StateReady, s)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		assert.True(t, p.IsReady())
	})

	t.Run("失敗後のLoadは再試行する", func(t *testing.T) {
		var calls int32
		p := newMapProviderWithFactory(func() (*gmaps.Client, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("network down")
			}
			return gmaps.NewClient(gmaps.WithAPIKey("AIza-test"))
		})

		assert.Equal(t, StateFailed, p.Load(context.Background()))
		assert.False(t, p.IsReady())

		_, err := p.Client(context.Background())
		require.NoError(t, err)
		assert.True(t, p.IsReady())
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("APIキーなしは未設定エラー", func(t *testing.T) {
		p := NewMapProvider("", "")
		_, err := p.Client(context.Background())
		require.Error(t, err)
		assert.Equal(t, model.ErrorKindNotConfigured, model.KindOf(err))
		assert.Equal(t, StateFailed, p.State())
	})
}
