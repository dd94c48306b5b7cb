package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Tripcast-App/internal/domain/model"
)

const (
	openWeatherProvider   = "openweather"
	openWeatherDefaultURL = "https://api.openweathermap.org/data/2.5/weather"
)

// OpenWeatherClient はOpenWeatherMapから現在の天気を取得する
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewOpenWeatherClient は新しいクライアントを生成する
func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return NewOpenWeatherClientWithURL(openWeatherDefaultURL, apiKey)
}

// NewOpenWeatherClientWithURL は接続先を指定してクライアントを生成する
func NewOpenWeatherClientWithURL(baseURL, apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// GetCurrentWeather は座標の現在の天気を取得する
func (c *OpenWeatherClient) GetCurrentWeather(ctx context.Context, location string, point model.LatLng) (*model.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindNotConfigured, errors.New("OPENWEATHER_API_KEY が設定されていません"))
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", point.Lat))
	params.Set("lon", fmt.Sprintf("%f", point.Lng))
	params.Set("units", "metric")
	params.Set("lang", "kr")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindMalformed, fmt.Errorf("リクエストの作成に失敗: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindUnavailable, fmt.Errorf("APIリクエストに失敗: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindNotConfigured, fmt.Errorf("APIキーが無効です: %s", resp.Status))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindRateLimited, fmt.Errorf("APIの呼び出し上限です: %s", resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindUnavailable, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status))
	}

	var raw owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindMalformed, fmt.Errorf("JSONのパースに失敗: %w", err))
	}
	if len(raw.Weather) == 0 || raw.Weather[0].Icon == "" {
		return nil, model.NewProviderError(openWeatherProvider, model.ErrorKindMalformed, errors.New("天気アイコンがありません"))
	}

	return &model.WeatherSnapshot{
		Location:    location,
		Temperature: raw.Main.Temp,
		Description: raw.Weather[0].Description,
		IconCode:    raw.Weather[0].Icon,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		FetchedAt:   c.now(),
	}, nil
}
