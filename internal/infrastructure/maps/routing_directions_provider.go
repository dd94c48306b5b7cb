package maps

import (
	"context"
	"fmt"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
)

// RoutingDirectionsProvider は移動手段ごとにプロバイダを振り分ける
type RoutingDirectionsProvider struct {
	providers map[model.TransportMode]repository.DirectionsRepository
}

// NewRoutingDirectionsProvider は自動車はcar、徒歩・公共交通はwalkTransitに振り分けるプロバイダを生成する
func NewRoutingDirectionsProvider(car, walkTransit repository.DirectionsRepository) *RoutingDirectionsProvider {
	return &RoutingDirectionsProvider{
		providers: map[model.TransportMode]repository.DirectionsRepository{
			model.TransportModeCar:     car,
			model.TransportModeWalk:    walkTransit,
			model.TransportModeTransit: walkTransit,
		},
	}
}

func (r *RoutingDirectionsProvider) GetDirections(ctx context.Context, req model.DirectionsRequest) (*model.DirectionsResult, error) {
	provider, ok := r.providers[req.Mode]
	if !ok || provider == nil {
		return nil, model.NewProviderError("directions", model.ErrorKindNotConfigured, fmt.Errorf("移動手段 %s のプロバイダがありません", req.Mode))
	}
	return provider.GetDirections(ctx, req)
}
