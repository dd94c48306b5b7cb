package maps

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"

	gmaps "googlemaps.github.io/maps"
)

const googleGeocodingProvider = "google_geocoding"

// GoogleGeocoder はGoogle Geocoding APIで地名を座標に変換する
type GoogleGeocoder struct {
	mapProvider *MapProvider
}

// NewGoogleGeocoder は新しいGoogleGeocoderを生成する
func NewGoogleGeocoder(mapProvider *MapProvider) *GoogleGeocoder {
	return &GoogleGeocoder{mapProvider: mapProvider}
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, location string) (model.LatLng, error) {
	client, err := g.mapProvider.Client(ctx)
	if err != nil {
		return model.LatLng{}, err
	}

	results, err := client.Geocode(ctx, &gmaps.GeocodingRequest{
		Address:  location,
		Language: "ko",
		Region:   "kr",
	})
	if err != nil {
		return model.LatLng{}, model.NewProviderError(googleGeocodingProvider, classifyGoogleError(err), fmt.Errorf("ジオコーディングに失敗: %w", err))
	}
	if len(results) == 0 {
		return model.LatLng{}, model.NewProviderError(googleGeocodingProvider, model.ErrorKindNotFound, fmt.Errorf("該当する地点がありません: %s", location))
	}

	loc := results[0].Geometry.Location
	return model.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// FallbackGeocoder は主要な旅行先の固定テーブルで座標を返す
type FallbackGeocoder struct {
	table map[string]model.LatLng
}

// NewFallbackGeocoder は新しいFallbackGeocoderを生成する
func NewFallbackGeocoder() *FallbackGeocoder {
	return &FallbackGeocoder{table: model.KnownDestinations}
}

// Geocode は目的地名に主要都市名が含まれていればその座標を返す
func (f *FallbackGeocoder) Geocode(_ context.Context, location string) (model.LatLng, error) {
	name := strings.TrimSpace(location)
	if p, ok := f.table[name]; ok {
		return p, nil
	}
	for _, city := range sortedKeys(f.table) {
		if strings.Contains(name, city) {
			return f.table[city], nil
		}
	}
	return model.LatLng{}, model.NewProviderError("fallback_geocoding", model.ErrorKindNotFound, fmt.Errorf("未登録の目的地です: %s", location))
}

// ChainGeocoder は登録順に問い合わせ、最初に成功した結果を返す
// すべて失敗した場合はソウル市庁の座標を返す
type ChainGeocoder struct {
	geocoders []repository.GeocodingRepository
}

// NewChainGeocoder は新しいChainGeocoderを生成する
func NewChainGeocoder(geocoders ...repository.GeocodingRepository) *ChainGeocoder {
	return &ChainGeocoder{geocoders: geocoders}
}

func (c *ChainGeocoder) Geocode(ctx context.Context, location string) (model.LatLng, error) {
	for _, g := range c.geocoders {
		p, err := g.Geocode(ctx, location)
		if err == nil {
			return p, nil
		}
		log.Printf("⚠️ ジオコーディング失敗、次の方法を試します: location=%s, error=%v", location, err)
	}
	return model.SeoulCityHall, nil
}

// sortedKeys は長い名前から順に並べたキーを返す
func sortedKeys(table map[string]model.LatLng) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
