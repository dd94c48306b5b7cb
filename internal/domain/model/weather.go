package model

import "time"

// WeatherSnapshot ある地点の現在の天気
type WeatherSnapshot struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"` // 摂氏
	Description string    `json:"description"`
	IconCode    string    `json:"icon_code"` // 先頭2文字で天気の系統を判定する（例: "10d"）
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	IsEstimated bool      `json:"is_estimated"` // 外部プロバイダではなく推定値の場合 true
	FetchedAt   time.Time `json:"fetched_at"`
}

// WeatherFamily 天気アイコンコードから導かれる天気の系統
type WeatherFamily string

const (
	WeatherFamilyClear  WeatherFamily = "clear"  // 晴れ系（01, 02）
	WeatherFamilyWet    WeatherFamily = "wet"    // 雨・雷・雪系（09, 10, 11, 13）
	WeatherFamilyCloudy WeatherFamily = "cloudy" // それ以外（曇り、霧など）
)

// FamilyOf はアイコンコードの先頭2文字から天気の系統を判定する
func FamilyOf(iconCode string) WeatherFamily {
	prefix := iconCode
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	switch prefix {
	case "09", "10", "11", "13":
		return WeatherFamilyWet
	case "01", "02":
		return WeatherFamilyClear
	default:
		return WeatherFamilyCloudy
	}
}

// Family はスナップショットの天気の系統を返す
func (w *WeatherSnapshot) Family() WeatherFamily {
	return FamilyOf(w.IconCode)
}
