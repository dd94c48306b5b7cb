package model

import (
	"fmt"
	"time"
)

// TransportMode 移動手段
type TransportMode string

const (
	TransportModeWalk    TransportMode = "walk"
	TransportModeCar     TransportMode = "car"
	TransportModeTransit TransportMode = "transit"
)

// ParseTransportMode は文字列から移動手段を解決する（空文字は徒歩）
func ParseTransportMode(value string) (TransportMode, error) {
	switch TransportMode(value) {
	case "":
		return TransportModeWalk, nil
	case TransportModeWalk, TransportModeCar, TransportModeTransit:
		return TransportMode(value), nil
	default:
		return "", fmt.Errorf("対応していない移動手段です: %s", value)
	}
}

// Priority 経路探索の優先条件（外部プロバイダへそのまま渡す）
type Priority string

const (
	PriorityRecommend Priority = "RECOMMEND"
	PriorityTime      Priority = "TIME"
	PriorityDistance  Priority = "DISTANCE"
)

// PriorityForMode は移動手段から経路探索の優先条件を導く
func PriorityForMode(mode TransportMode) Priority {
	switch mode {
	case TransportModeWalk:
		return PriorityDistance
	case TransportModeTransit:
		return PriorityTime
	default:
		return PriorityRecommend
	}
}

// DirectionsRequest 1区間の経路探索リクエスト
type DirectionsRequest struct {
	Origin      LatLng
	Destination LatLng
	Mode        TransportMode
	Priority    Priority
}

// DirectionsResult 1区間の経路探索結果
type DirectionsResult struct {
	DistanceMeters  float64
	DurationSeconds float64
	Fare            *int // 料金（ウォン）。プロバイダが返さない場合は nil
	IsFallback      bool // プロバイダ自身が推定値を返した場合 true
}

// RouteSegment 連続する2スポット間の区間
type RouteSegment struct {
	FromPlaceID     string        `json:"from_place_id"`
	ToPlaceID       string        `json:"to_place_id"`
	DistanceMeters  float64       `json:"distance_meters"`
	DurationSeconds float64       `json:"duration_seconds"`
	TransportMode   TransportMode `json:"transport_mode"`
	IsEstimated     bool          `json:"is_estimated"` // 直線距離による推定の場合 true
	Fare            *int          `json:"fare,omitempty"`
	DistanceText    string        `json:"distance_text"`
	DurationText    string        `json:"duration_text"`
}

// Route 候補セットから導出されるルート。常に作り直され、部分更新はしない
type Route struct {
	Places                   []Place        `json:"places"`
	Segments                 []RouteSegment `json:"segments"`
	TransportMode            TransportMode  `json:"transport_mode"`
	TotalDistanceMeters      float64        `json:"total_distance_meters"`
	TotalDurationSeconds     float64        `json:"total_duration_seconds"`
	TotalDistanceText        string         `json:"total_distance_text"`
	TotalDurationText        string         `json:"total_duration_text"`
	RecommendedDurationLabel string         `json:"recommended_duration_label"`
	HasEstimatedSegments     bool           `json:"has_estimated_segments"`
	TotalFare                *int           `json:"total_fare,omitempty"`
}

// RouteSnapshot 共有用に保存されたルート
type RouteSnapshot struct {
	ID        string    `json:"id"`
	Route     *Route    `json:"route"`
	Bounds    string    `json:"bounds"` // WKT形式の範囲
	CreatedAt time.Time `json:"created_at"`
	ExpireAt  time.Time `json:"expire_at"`
}
