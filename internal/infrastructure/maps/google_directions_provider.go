package maps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"Tripcast-App/internal/domain/model"

	gmaps "googlemaps.github.io/maps"
)

const googleDirectionsProvider = "google_directions"

// GoogleDirectionsProvider はGoogle Maps Directions APIを使用した徒歩・公共交通の経路探索の実装
type GoogleDirectionsProvider struct {
	mapProvider *MapProvider
	language    string
}

// NewGoogleDirectionsProvider は新しいプロバイダを生成する
func NewGoogleDirectionsProvider(mapProvider *MapProvider) *GoogleDirectionsProvider {
	return &GoogleDirectionsProvider{
		mapProvider: mapProvider,
		language:    "ko",
	}
}

// GetDirections は1区間の経路を1回だけ問い合わせる
func (g *GoogleDirectionsProvider) GetDirections(ctx context.Context, req model.DirectionsRequest) (*model.DirectionsResult, error) {
	client, err := g.mapProvider.Client(ctx)
	if err != nil {
		return nil, err
	}

	mode := gmaps.TravelModeWalking
	if req.Mode == model.TransportModeTransit {
		mode = gmaps.TravelModeTransit
	}

	routes, _, err := client.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:      formatLatLng(req.Origin),
		Destination: formatLatLng(req.Destination),
		Mode:        mode,
		Language:    g.language,
	})
	if err != nil {
		return nil, model.NewProviderError(googleDirectionsProvider, classifyGoogleError(err), fmt.Errorf("APIリクエストに失敗: %w", err))
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, model.NewProviderError(googleDirectionsProvider, model.ErrorKindNotFound, errors.New("APIから有効なルートが返されませんでした"))
	}

	first := routes[0]
	result := &model.DirectionsResult{}
	for _, leg := range first.Legs {
		result.DistanceMeters += float64(leg.Distance.Meters)
		result.DurationSeconds += leg.Duration.Seconds()
	}
	if first.Fare != nil {
		fare := int(math.Round(first.Fare.Value))
		result.Fare = &fare
	}
	return result, nil
}

func formatLatLng(p model.LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// classifyGoogleError はクライアントライブラリのエラーを ErrorKind に分類する
func classifyGoogleError(err error) model.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrorKindTimeout
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "ZERO_RESULTS"), strings.Contains(msg, "NOT_FOUND"):
		return model.ErrorKindNotFound
	case strings.Contains(msg, "OVER_QUERY_LIMIT"), strings.Contains(msg, "OVER_DAILY_LIMIT"):
		return model.ErrorKindRateLimited
	case strings.Contains(msg, "REQUEST_DENIED"):
		return model.ErrorKindNotConfigured
	case strings.Contains(msg, "INVALID_REQUEST"):
		return model.ErrorKindMalformed
	default:
		return model.ErrorKindUnavailable
	}
}
