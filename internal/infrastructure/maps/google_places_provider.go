package maps

import (
	"context"
	"fmt"

	"Tripcast-App/internal/domain/helper"
	"Tripcast-App/internal/domain/model"

	gmaps "googlemaps.github.io/maps"
)

const googlePlacesProvider = "google_places"

// GooglePlacesProvider はGoogle Places Text Searchでスポットを検索する
type GooglePlacesProvider struct {
	mapProvider *MapProvider
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(mapProvider *MapProvider) *GooglePlacesProvider {
	return &GooglePlacesProvider{mapProvider: mapProvider}
}

// SearchPlaces は「目的地 カテゴリ名」で検索し、offset 件目以降を返す
func (g *GooglePlacesProvider) SearchPlaces(ctx context.Context, location string, category model.Category, offset int) ([]model.Place, error) {
	client, err := g.mapProvider.Client(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s", location, model.GetCategoryKoreanName(category))
	resp, err := client.TextSearch(ctx, &gmaps.TextSearchRequest{
		Query:    query,
		Language: "ko",
	})
	if err != nil {
		kind := classifyGoogleError(err)
		if kind == model.ErrorKindNotFound {
			return []model.Place{}, nil
		}
		return nil, model.NewProviderError(googlePlacesProvider, kind, fmt.Errorf("スポット検索に失敗 (query=%s): %w", query, err))
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(resp.Results) {
		return []model.Place{}, nil
	}

	places := make([]model.Place, 0, len(resp.Results)-offset)
	for _, r := range resp.Results[offset:] {
		places = append(places, toPlace(r, category))
	}
	return places, nil
}

func toPlace(r gmaps.PlacesSearchResult, category model.Category) model.Place {
	return model.Place{
		ID:          r.PlaceID,
		Name:        r.Name,
		Category:    category,
		Address:     r.FormattedAddress,
		Keywords:    r.Types,
		Rating:      float64(r.Rating),
		ReviewCount: r.UserRatingsTotal,
		Lat:         r.Geometry.Location.Lat,
		Lng:         r.Geometry.Location.Lng,
		ImageURL:    helper.FallbackImageURL(category, r.Name),
		PlaceURL:    "https://www.google.com/maps/place/?q=place_id:" + r.PlaceID,
	}
}
