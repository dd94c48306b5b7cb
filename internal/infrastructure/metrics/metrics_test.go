package metrics

import (
	"errors"
	"testing"

	"Tripcast-App/internal/domain/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Run("フォールバックを種類ごとに数える", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())

		m.RecordFallback("kakao", model.ErrorKindTimeout)
		m.RecordFallback("kakao", model.ErrorKindTimeout)
		m.RecordFallback("google_places", model.ErrorKindUnavailable)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.providerFallbacks.WithLabelValues("kakao", "timeout")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.providerFallbacks.WithLabelValues("google_places", "unavailable")))
	})

	t.Run("経路探索の成功と失敗を区別する", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())

		m.RecordDirections(model.TransportModeCar, nil)
		m.RecordDirections(model.TransportModeCar, model.NewProviderError("kakao", model.ErrorKindMalformed, errors.New("bad json")))

		assert.Equal(t, 1.0, testutil.ToFloat64(m.directionsCalls.WithLabelValues("car", "ok")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.directionsCalls.WithLabelValues("car", "malformed")))
	})

	t.Run("nilでもパニックしない", func(t *testing.T) {
		var m *Metrics
		assert.NotPanics(t, func() {
			m.RecordFallback("weather", model.ErrorKindNotConfigured)
			m.RecordDirections(model.TransportModeWalk, nil)
		})
	})
}
