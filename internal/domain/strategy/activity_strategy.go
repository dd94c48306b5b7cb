package strategy

import "Tripcast-App/internal/domain/model"

// ActivityStrategy は体験型のスポットを中心に候補セットを構成する
// 構成: [① アクティビティ] → [② 飲食店] → [③ 公園] → [④ 宿泊]
type ActivityStrategy struct{}

func NewActivityStrategy() StrategyInterface {
	return &ActivityStrategy{}
}

func (s *ActivityStrategy) GetTravelStyle() model.TravelStyle {
	return model.TravelStyleActivity
}

func (s *ActivityStrategy) GetTargetCategories() []model.Category {
	return []model.Category{
		model.CategoryActivity,
		model.CategoryRestaurant,
		model.CategoryPark,
		model.CategoryLodging,
	}
}

func (s *ActivityStrategy) BuildPlaceholderDescription(location string, category model.Category) string {
	return placeholderDescription(location, category, "활기차게")
}
