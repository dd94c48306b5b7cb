package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Tripcast-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jeju = model.LatLng{Lat: 33.4996, Lng: 126.5312}

func TestOpenWeatherClient_GetCurrentWeather(t *testing.T) {
	t.Run("正常なレスポンスを変換する", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "33.499600", q.Get("lat"))
			assert.Equal(t, "126.531200", q.Get("lon"))
			assert.Equal(t, "metric", q.Get("units"))
			assert.Equal(t, "kr", q.Get("lang"))
			assert.Equal(t, "owm-key", q.Get("appid"))
			_, _ = w.Write([]byte(`{"main":{"temp":21.3,"humidity":82},
				"weather":[{"description":"보통 비","icon":"10d"}],"wind":{"speed":4.1}}`))
		}))
		defer srv.Close()

		c := NewOpenWeatherClientWithURL(srv.URL, "owm-key")
		got, err := c.GetCurrentWeather(context.Background(), "제주", jeju)
		require.NoError(t, err)
		assert.Equal(t, "제주", got.Location)
		assert.Equal(t, 21.3, got.Temperature)
		assert.Equal(t, "보통 비", got.Description)
		assert.Equal(t, "10d", got.IconCode)
		assert.Equal(t, 82, got.Humidity)
		assert.Equal(t, 4.1, got.WindSpeed)
		assert.False(t, got.IsEstimated)
		assert.Equal(t, model.WeatherFamilyWet, got.Family())
	})

	cases := []struct {
		name   string
		status int
		body   string
		kind   model.ErrorKind
	}{
		{"サーバーエラー", http.StatusInternalServerError, `{}`, model.ErrorKindUnavailable},
		{"無効なキー", http.StatusUnauthorized, `{}`, model.ErrorKindNotConfigured},
		{"呼び出し上限", http.StatusTooManyRequests, `{}`, model.ErrorKindRateLimited},
		{"不正なJSON", http.StatusOK, `{"main":`, model.ErrorKindMalformed},
		{"アイコンなし", http.StatusOK, `{"main":{"temp":1},"weather":[]}`, model.ErrorKindMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewOpenWeatherClientWithURL(srv.URL, "owm-key").GetCurrentWeather(context.Background(), "제주", jeju)
			require.Error(t, err)
			assert.Equal(t, tc.kind, model.KindOf(err))
		})
	}

	t.Run("APIキーなし", func(t *testing.T) {
		_, err := NewOpenWeatherClient("").GetCurrentWeather(context.Background(), "제주", jeju)
		assert.Equal(t, model.ErrorKindNotConfigured, model.KindOf(err))
	})
}
