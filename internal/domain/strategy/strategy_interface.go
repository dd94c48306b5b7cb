package strategy

import (
	"Tripcast-App/internal/domain/model"
	"fmt"
)

// StrategyInterface は、旅行スタイルごとに候補セットの構成を決める戦略のインターフェース
type StrategyInterface interface {
	// 対応する旅行スタイル
	GetTravelStyle() model.TravelStyle

	// 候補セットを構成する4つのカテゴリ（順序が候補セットのスロット順になる）
	GetTargetCategories() []model.Category

	// 外部検索が空だった場合の合成候補の説明文
	BuildPlaceholderDescription(location string, category model.Category) string
}

// NewStrategies は全旅行スタイルの戦略を生成する
func NewStrategies() map[model.TravelStyle]StrategyInterface {
	return map[model.TravelStyle]StrategyInterface{
		model.TravelStyleHealing:     NewHealingStrategy(),
		model.TravelStyleSightseeing: NewSightseeingStrategy(),
		model.TravelStyleActivity:    NewActivityStrategy(),
	}
}

// Resolve は旅行スタイルに対応する戦略を取得する
func Resolve(strategies map[model.TravelStyle]StrategyInterface, style model.TravelStyle) (StrategyInterface, error) {
	s, ok := strategies[style]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownTravelStyle, style)
	}
	return s, nil
}

// placeholderDescription はスタイル共通の説明文を組み立てる
func placeholderDescription(location string, category model.Category, mood string) string {
	return fmt.Sprintf("%s에서 %s 즐기기 좋은 %s", location, mood, model.GetCategoryKoreanName(category))
}
