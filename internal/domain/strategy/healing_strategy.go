package strategy

import "Tripcast-App/internal/domain/model"

// HealingStrategy はゆったり休める場所を中心に候補セットを構成する
// 構成: [① カフェ] → [② 公園] → [③ 宿泊・スパ] → [④ 飲食店]
type HealingStrategy struct{}

func NewHealingStrategy() StrategyInterface {
	return &HealingStrategy{}
}

func (s *HealingStrategy) GetTravelStyle() model.TravelStyle {
	return model.TravelStyleHealing
}

func (s *HealingStrategy) GetTargetCategories() []model.Category {
	return []model.Category{
		model.CategoryCafe,
		model.CategoryPark,
		model.CategoryLodging,
		model.CategoryRestaurant,
	}
}

func (s *HealingStrategy) BuildPlaceholderDescription(location string, category model.Category) string {
	return placeholderDescription(location, category, "여유롭게")
}
