package service

import (
	"Tripcast-App/internal/domain/helper"
	"Tripcast-App/internal/domain/model"
)

// 天気の系統ごとの推薦メッセージ
const (
	messageWet    = "비나 눈이 오는 날에는 실내 명소를 추천해요. 카페나 박물관에서 여유를 즐겨보세요."
	messageClear  = "맑은 날씨예요! 공원이나 해변 같은 야외 명소를 둘러보기 좋아요."
	messageCloudy = "조금 흐리지만 관광하기에는 여전히 좋은 날씨예요."
)

// WeatherScorer は天気と屋内・屋外判定からスポットの適合スコアを算出する
type WeatherScorer struct {
	classifier *PlaceClassifier
}

// NewWeatherScorer は新しいWeatherScorerインスタンスを作成する
func NewWeatherScorer(classifier *PlaceClassifier) *WeatherScorer {
	return &WeatherScorer{classifier: classifier}
}

// Score は天気アイコンコードの系統ごとに固定のスコアを返す
//   - 雨・雪系: 屋内 10 / 屋外 1
//   - 晴れ系:   屋内 1 / 屋外 10
//   - その他:   屋内 6 / 屋外 5
func (s *WeatherScorer) Score(isIndoor bool, iconCode string) int {
	switch model.FamilyOf(iconCode) {
	case model.WeatherFamilyWet:
		if isIndoor {
			return 10
		}
		return 1
	case model.WeatherFamilyClear:
		if isIndoor {
			return 1
		}
		return 10
	default:
		if isIndoor {
			return 6
		}
		return 5
	}
}

// RecommendationMessage はスコアと同じ系統分けで推薦メッセージを返す
func (s *WeatherScorer) RecommendationMessage(iconCode string) string {
	switch model.FamilyOf(iconCode) {
	case model.WeatherFamilyWet:
		return messageWet
	case model.WeatherFamilyClear:
		return messageClear
	default:
		return messageCloudy
	}
}

// Annotate は各スポットに屋内判定と天気スコアを付与する
func (s *WeatherScorer) Annotate(places []model.Place, iconCode string) {
	for i := range places {
		places[i].IsIndoor = s.classifier.Classify(places[i].Name, places[i].Address)
		places[i].WeatherScore = s.Score(places[i].IsIndoor, iconCode)
	}
}

// Rescore は天気が変わったときにスコアだけを再計算する
func (s *WeatherScorer) Rescore(places []model.Place, iconCode string) {
	for i := range places {
		places[i].WeatherScore = s.Score(places[i].IsIndoor, iconCode)
	}
}

// SortPlaces は指定の並び順でスポットを並べ替える
func (s *WeatherScorer) SortPlaces(places []model.Place, mode model.SortMode) {
	switch mode {
	case model.SortByRating:
		helper.SortByRating(places)
	default:
		helper.SortByWeatherScore(places)
	}
}
