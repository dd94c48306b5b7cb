package helper

import (
	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"context"
)

// PlaceSearchHelper はスポット検索に関するヘルパー関数を提供する
type PlaceSearchHelper struct {
	placeRepo repository.PlaceSearchRepository
}

// NewPlaceSearchHelper は新しいPlaceSearchHelperインスタンスを作成する
func NewPlaceSearchHelper(repo repository.PlaceSearchRepository) *PlaceSearchHelper {
	return &PlaceSearchHelper{
		placeRepo: repo,
	}
}

// FindCandidate はカテゴリの検索結果から、まだ候補セットに含まれていない最初のスポットを返す
// 見つからない場合は nil, nil
func (h *PlaceSearchHelper) FindCandidate(ctx context.Context, location string, category model.Category, offset int, exclude map[string]struct{}) (*model.Place, error) {
	results, err := h.placeRepo.SearchPlaces(ctx, location, category, offset)
	if err != nil {
		return nil, err
	}

	for i := range results {
		candidate := results[i]
		if candidate.ID == "" {
			continue
		}
		if _, dup := exclude[candidate.ID]; dup {
			continue
		}
		if candidate.Category == "" {
			candidate.Category = category
		}
		return &candidate, nil
	}

	return nil, nil
}
