package service

import (
	"fmt"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/strategy"
)

// SurveyService はサーベイの回答から旅行スタイルを決める
type SurveyService interface {
	Evaluate(answers []model.SurveyAnswer) (*model.SurveyResult, error)
}

type surveyService struct {
	strategies map[model.TravelStyle]strategy.StrategyInterface
}

// NewSurveyService は新しいSurveyServiceを作成する
func NewSurveyService() SurveyService {
	return &surveyService{strategies: strategy.NewStrategies()}
}

// Evaluate は回答ごとの重みを旅行スタイル別に合計し、最も多いスタイルを返す
// 同点の場合は 힐링 > 관광 > 액티비티 の順で優先する
func (s *surveyService) Evaluate(answers []model.SurveyAnswer) (*model.SurveyResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("回答がありません")
	}

	scores := make(map[model.TravelStyle]int, len(s.strategies))
	for _, style := range model.GetAllTravelStyles() {
		scores[style] = 0
	}

	for _, answer := range answers {
		style, err := model.ParseTravelStyle(string(answer.Style))
		if err != nil {
			return nil, fmt.Errorf("質問 %s の回答が不正です: %w", answer.QuestionID, err)
		}
		weight := answer.Weight
		if weight <= 0 {
			weight = 1
		}
		scores[style] += weight
	}

	best := model.GetAllTravelStyles()[0]
	for _, style := range model.GetAllTravelStyles() {
		if scores[style] > scores[best] {
			best = style
		}
	}

	selectedStrategy, err := strategy.Resolve(s.strategies, best)
	if err != nil {
		return nil, err
	}

	return &model.SurveyResult{
		TravelStyle: best,
		StyleName:   model.GetTravelStyleKoreanName(best),
		Scores:      scores,
		Categories:  selectedStrategy.GetTargetCategories(),
	}, nil
}
