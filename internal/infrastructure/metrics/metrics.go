package metrics

import (
	"Tripcast-App/internal/domain/model"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics は外部プロバイダ呼び出しに関するカウンタをまとめる
// nil のままでも各メソッドは安全に呼び出せる
type Metrics struct {
	providerFallbacks *prometheus.CounterVec
	directionsCalls   *prometheus.CounterVec
}

// NewMetrics はカウンタを生成し、reg に登録する
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		providerFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripcast_provider_fallback_total",
			Help: "外部プロバイダの失敗により推定データへ切り替えた回数",
		}, []string{"provider", "kind"}),
		directionsCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripcast_directions_requests_total",
			Help: "区間ごとの経路探索リクエスト数",
		}, []string{"mode", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.providerFallbacks, m.directionsCalls)
	}
	return m
}

// RecordFallback はフォールバックを1件記録する
func (m *Metrics) RecordFallback(provider string, kind model.ErrorKind) {
	if m == nil {
		return
	}
	m.providerFallbacks.WithLabelValues(provider, string(kind)).Inc()
}

// RecordDirections は経路探索の結果を1件記録する
// result は "ok" または失敗の ErrorKind
func (m *Metrics) RecordDirections(mode model.TransportMode, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(model.KindOf(err))
	}
	m.directionsCalls.WithLabelValues(string(mode), result).Inc()
}
