package strategy

import "Tripcast-App/internal/domain/model"

// SightseeingStrategy は名所と文化施設を中心に候補セットを構成する
// 構成: [① 観光名所] → [② 博物館] → [③ 飲食店] → [④ 宿泊]
type SightseeingStrategy struct{}

func NewSightseeingStrategy() StrategyInterface {
	return &SightseeingStrategy{}
}

func (s *SightseeingStrategy) GetTravelStyle() model.TravelStyle {
	return model.TravelStyleSightseeing
}

func (s *SightseeingStrategy) GetTargetCategories() []model.Category {
	return []model.Category{
		model.CategoryAttraction,
		model.CategoryMuseum,
		model.CategoryRestaurant,
		model.CategoryLodging,
	}
}

func (s *SightseeingStrategy) BuildPlaceholderDescription(location string, category model.Category) string {
	return placeholderDescription(location, category, "구경하며")
}
