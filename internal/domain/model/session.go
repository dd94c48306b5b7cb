package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SortMode 候補セットの並び順
type SortMode string

const (
	SortByWeather SortMode = "weather"
	SortByRating  SortMode = "rating"
)

// SelectionSession 1クライアントが所有する4スポットの作業セット
// 旅行スタイルまたは目的地が変わった場合は新しいセッションに置き換える
type SelectionSession struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id,omitempty"`
	TravelStyle  TravelStyle     `json:"travel_style"`
	Location     string          `json:"location"`
	Center       LatLng          `json:"center"`
	Weather      WeatherSnapshot `json:"weather"`
	Places       []Place         `json:"places"`
	RefreshCount int             `json:"refresh_count"`
	Generation   int64           `json:"generation"` // 更新ごとに増加。古い結果の破棄に使用
	SortMode     SortMode        `json:"sort_mode"`
	Route        *Route          `json:"route,omitempty"` // 最後に作成したルート。スポットの並びか移動手段が変われば作り直す
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SelectionOutcome 候補選定・更新の結果
type SelectionOutcome struct {
	Places    []Place `json:"places"`
	Notice    string  `json:"notice,omitempty"` // ユーザーに表示する通知（タイムアウトなど）
	TimedOut  bool    `json:"timed_out"`
	Estimated bool    `json:"estimated"` // 合成候補を含む場合 true
}

// SelectionKind 保存データの種類
type SelectionKind string

const (
	SelectionKindBookmark   SelectionKind = "bookmark"
	SelectionKindItinerary  SelectionKind = "itinerary"
	SelectionKindPreference SelectionKind = "preference"
)

// IsValid は対応している種類かどうかを判定する
func (k SelectionKind) IsValid() bool {
	switch k {
	case SelectionKindBookmark, SelectionKindItinerary, SelectionKindPreference:
		return true
	default:
		return false
	}
}

// SavedSelection ユーザーが保存したスポット・ルート・設定
type SavedSelection struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Kind      SelectionKind   `json:"kind"`
	Title     string          `json:"title"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveSelectionRequest 保存リクエスト
type SaveSelectionRequest struct {
	Kind    SelectionKind   `json:"kind" binding:"required"`
	Title   string          `json:"title"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// ParseSortMode は文字列から並び順を解決する（空文字は天気スコア順）
func ParseSortMode(value string) (SortMode, error) {
	switch SortMode(value) {
	case "":
		return SortByWeather, nil
	case SortByWeather, SortByRating:
		return SortMode(value), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSortMode, value)
	}
}

// StartSessionRequest 候補セットの作成リクエスト
// 旅行スタイルまたは目的地を変える場合は新しいセッションを作り、PreviousSessionID の古いセッションは破棄する
type StartSessionRequest struct {
	TravelStyle       string `json:"travel_style" binding:"required"`
	Location          string `json:"location" binding:"required"`
	PreviousSessionID string `json:"previous_session_id"`
}

// SortRequest 並び順の変更リクエスト
type SortRequest struct {
	By string `json:"by"`
}

// SessionResponse セッション系APIのレスポンス
type SessionResponse struct {
	Session        *SelectionSession `json:"session"`
	WeatherMessage string            `json:"weather_message"`
	Notice         string            `json:"notice,omitempty"`
	TimedOut       bool              `json:"timed_out"`
	Estimated      bool              `json:"estimated"`
}

// WeatherResponse 天気APIのレスポンス
type WeatherResponse struct {
	Weather        WeatherSnapshot `json:"weather"`
	WeatherMessage string          `json:"weather_message"`
}
