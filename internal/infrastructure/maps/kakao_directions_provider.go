package maps

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
	kakaoDirectionsProvider = "kakao_directions"
	kakaoDefaultBaseURL     = "https://apis-navi.kakaomobility.com"
)

// KakaoDirectionsProvider はKakao Mobility Directions APIを使用した自動車経路探索の実装
type KakaoDirectionsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewKakaoDirectionsProvider は新しいプロバイダを生成する
func NewKakaoDirectionsProvider(apiKey string) *KakaoDirectionsProvider {
	return NewKakaoDirectionsProviderWithURL(apiKey, kakaoDefaultBaseURL)
}

// NewKakaoDirectionsProviderWithURL は接続先を指定してプロバイダを生成する
func NewKakaoDirectionsProviderWithURL(apiKey, baseURL string) *KakaoDirectionsProvider {
	return &KakaoDirectionsProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetDirections は1区間の経路を1回だけ問い合わせる。リトライはしない
func (k *KakaoDirectionsProvider) GetDirections(ctx context.Context, req model.DirectionsRequest) (*model.DirectionsResult, error) {
	if k.apiKey == "" {
		return nil, model.NewProviderError(kakaoDirectionsProvider, model.ErrorKindNotConfigured, errors.New("KAKAO_REST_API_KEY が設定されていません"))
	}

	// 1. APIリクエストURLを構築
	reqURL := k.buildURL(req)

	// 2. HTTPリクエストを作成・実行
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, model.NewProviderError(kakaoDirectionsProvider, model.ErrorKindMalformed, fmt.Errorf("リクエストの作成に失敗: %w", err))
	}
	httpReq.Header.Set("Authorization", "KakaoAK "+k.apiKey)

	resp, err := k.httpClient.Do(httpReq)
	if err != nil {
		return nil, model.NewProviderError(kakaoDirectionsProvider, model.ErrorKindUnavailable, fmt.Errorf("APIリクエストに失敗: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		kind := model.ErrorKindUnavailable
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			kind = model.ErrorKindRateLimited
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = model.ErrorKindNotConfigured
		}
		return nil, model.NewProviderError(kakaoDirectionsProvider, kind, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status))
	}

	// 3. JSONレスポンスをパース
	var apiResp kakaoDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, model.NewProviderError(kakaoDirectionsProvider, model.ErrorKindMalformed, fmt.Errorf("JSONのパースに失敗: %w", err))
	}
	if len(apiResp.Routes) == 0 {
		return nil, model.NewProviderError(kakaoDirectionsProvider, model.ErrorKindMalformed, errors.New("APIから有効なルートが返されませんでした"))
	}

	first := apiResp.Routes[0]
	if first.ResultCode != 0 {
		return nil, model.NewProviderError(kakaoDirectionsProvider, model.ErrorKindNotFound,
			fmt.Errorf("経路が見つかりません: code=%d, %s", first.ResultCode, first.ResultMsg))
	}

	// 4. ドメインモデルに変換して返す
	fare := first.Summary.Fare.Taxi + first.Summary.Fare.Toll
	return &model.DirectionsResult{
		DistanceMeters:  float64(first.Summary.Distance),
		DurationSeconds: float64(first.Summary.Duration),
		Fare:            &fare,
	}, nil
}

func (k *KakaoDirectionsProvider) buildURL(req model.DirectionsRequest) string {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityRecommend
	}

	// Kakao は「経度,緯度」の順
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", req.Origin.Lng, req.Origin.Lat))
	params.Set("destination", fmt.Sprintf("%f,%f", req.Destination.Lng, req.Destination.Lat))
	params.Set("priority", string(priority))

	return fmt.Sprintf("%s/v1/directions?%s", k.baseURL, params.Encode())
}

// --- Kakao Mobility APIのレスポンスをパースするための構造体 ---

type kakaoDirectionsResponse struct {
	TransID string       `json:"trans_id"`
	Routes  []kakaoRoute `json:"routes"`
}
type kakaoRoute struct {
	ResultCode int          `json:"result_code"`
	ResultMsg  string       `json:"result_msg"`
	Summary    kakaoSummary `json:"summary"`
}
type kakaoSummary struct {
	Distance int       `json:"distance"` // meters
	Duration int       `json:"duration"` // seconds
	Fare     kakaoFare `json:"fare"`
}
type kakaoFare struct {
	Taxi int `json:"taxi"`
	Toll int `json:"toll"`
}
