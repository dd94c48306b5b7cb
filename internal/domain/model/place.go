package model

import "github.com/paulmach/orb"

// LatLng 緯度経度を表す基本的な型（経路検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint LatLng を orb.Point に変換する（orb は [lng, lat] の順）
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// LatLngFromPoint orb.Point から LatLng を生成する
func LatLngFromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// Place 推薦候補となるスポット
type Place struct {
	ID            string   `json:"id"`                  // 候補セット内で一意なID
	Name          string   `json:"name"`                // スポット名
	Category      Category `json:"category"`            // カテゴリ（固定語彙）
	Address       string   `json:"address"`             // 住所
	Description   string   `json:"description"`         // 説明
	Keywords      []string `json:"keywords"`            // キーワード
	Rating        float64  `json:"rating"`              // 評価値 0.0〜5.0
	ReviewCount   int      `json:"review_count"`        // レビュー数
	Lat           float64  `json:"lat"`                 // 緯度
	Lng           float64  `json:"lng"`                 // 経度
	ImageURL      string   `json:"image_url,omitempty"` // 画像URL
	PlaceURL      string   `json:"place_url,omitempty"` // 詳細ページURL
	IsIndoor      bool     `json:"is_indoor"`           // 屋内判定（セッション内でのみ保持）
	WeatherScore  int      `json:"weather_score"`       // 天気適合スコア
	Locked        bool     `json:"locked"`              // ユーザーによる固定
	IsPlaceholder bool     `json:"is_placeholder"`      // 外部検索が空のときの合成候補
}

// ToLatLng Placeの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// Location リクエストで受け取る位置情報
type Location struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

// ToLatLng Location を LatLng に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// PlaceIDs はスポットIDの並びを返す（ルート再計算の判定に使用）
func PlaceIDs(places []Place) []string {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.ID
	}
	return ids
}
