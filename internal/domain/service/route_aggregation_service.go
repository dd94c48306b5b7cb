package service

import (
	"context"
	"fmt"
	"log"

	"Tripcast-App/internal/domain/helper"
	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/infrastructure/metrics"

	"golang.org/x/sync/errgroup"
)

const (
	LabelHalfDay = "반나절 코스"
	LabelFullDay = "하루 코스"

	directionsProvider = "directions"
)

// DurationPolicy はルートの所要時間ラベルを決める閾値
type DurationPolicy struct {
	HalfDayMaxTravelMinutes float64 // 移動時間の合計がこれ以下なら半日
	HalfDayMaxPlaces        int     // スポット数がこれ以下なら半日
}

// DefaultDurationPolicy は移動2時間以内かつ4スポット以内を半日とする
func DefaultDurationPolicy() DurationPolicy {
	return DurationPolicy{HalfDayMaxTravelMinutes: 120, HalfDayMaxPlaces: 4}
}

// Label は合計移動時間とスポット数からラベルを返す
func (p DurationPolicy) Label(totalDurationSeconds float64, placeCount int) string {
	if totalDurationSeconds/60 <= p.HalfDayMaxTravelMinutes && placeCount <= p.HalfDayMaxPlaces {
		return LabelHalfDay
	}
	return LabelFullDay
}

// RouteAggregationService は候補セットからルートを組み立てる
type RouteAggregationService interface {
	BuildRoute(ctx context.Context, places []model.Place, mode model.TransportMode) (*model.Route, error)
}

type routeAggregationService struct {
	directionsRepo repository.DirectionsRepository
	policy         DurationPolicy
	concurrency    int
	metrics        *metrics.Metrics
}

// NewRouteAggregationService は新しいRouteAggregationServiceを作成する
// concurrency が1以下の場合は区間を1つずつ順番に問い合わせる
func NewRouteAggregationService(repo repository.DirectionsRepository, policy DurationPolicy, concurrency int, m *metrics.Metrics) RouteAggregationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &routeAggregationService{
		directionsRepo: repo,
		policy:         policy,
		concurrency:    concurrency,
		metrics:        m,
	}
}

// BuildRoute は連続する2スポットごとに経路を探索し、合計とラベルを持つルートを返す
// スポットが2件未満の場合はルートなし（nil, nil）
func (s *routeAggregationService) BuildRoute(ctx context.Context, places []model.Place, mode model.TransportMode) (*model.Route, error) {
	if len(places) < 2 {
		return nil, nil
	}
	if mode == "" {
		mode = model.TransportModeWalk
	}

	segments := make([]model.RouteSegment, len(places)-1)
	if s.concurrency > 1 {
		if err := s.buildSegmentsParallel(ctx, places, mode, segments); err != nil {
			return nil, err
		}
	} else {
		for i := range segments {
			segments[i] = s.buildSegment(ctx, &places[i], &places[i+1], mode)
		}
	}

	route := &model.Route{
		Places:        helper.ClonePlaces(places),
		Segments:      segments,
		TransportMode: mode,
	}

	var totalFare int
	hasFare := false
	for _, seg := range segments {
		route.TotalDistanceMeters += seg.DistanceMeters
		route.TotalDurationSeconds += seg.DurationSeconds
		if seg.IsEstimated {
			route.HasEstimatedSegments = true
		}
		if seg.Fare != nil {
			totalFare += *seg.Fare
			hasFare = true
		}
	}
	if hasFare {
		route.TotalFare = &totalFare
	}

	route.TotalDistanceText = helper.FormatDistance(route.TotalDistanceMeters)
	route.TotalDurationText = helper.FormatDuration(route.TotalDurationSeconds)
	route.RecommendedDurationLabel = s.policy.Label(route.TotalDurationSeconds, len(places))

	log.Printf("🗺️ ルート作成完了: mode=%s, 区間=%d, 距離=%s, 時間=%s, 推定区間あり=%t",
		mode, len(segments), route.TotalDistanceText, route.TotalDurationText, route.HasEstimatedSegments)
	return route, nil
}

// buildSegmentsParallel は区間を並行に問い合わせ、元の順番で segments に格納する
func (s *routeAggregationService) buildSegmentsParallel(ctx context.Context, places []model.Place, mode model.TransportMode, segments []model.RouteSegment) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range segments {
		g.Go(func() error {
			segments[i] = s.buildSegment(gctx, &places[i], &places[i+1], mode)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("区間の経路探索に失敗しました: %w", err)
	}
	return nil
}

// buildSegment は1区間の経路を探索する。失敗した場合は直線距離と徒歩速度で推定する
func (s *routeAggregationService) buildSegment(ctx context.Context, from, to *model.Place, mode model.TransportMode) model.RouteSegment {
	segment := model.RouteSegment{
		FromPlaceID:   from.ID,
		ToPlaceID:     to.ID,
		TransportMode: mode,
	}

	result, err := s.directionsRepo.GetDirections(ctx, model.DirectionsRequest{
		Origin:      from.ToLatLng(),
		Destination: to.ToLatLng(),
		Mode:        mode,
		Priority:    model.PriorityForMode(mode),
	})
	s.metrics.RecordDirections(mode, err)

	if err != nil || result == nil {
		if err != nil {
			kind := model.KindOf(err)
			s.metrics.RecordFallback(directionsProvider, kind)
			log.Printf("⚠️ 経路探索失敗のため直線距離で推定: %s -> %s, kind=%s, error=%v", from.ID, to.ID, kind, err)
		}
		distance := helper.EstimateDistancePlace(from, to)
		segment.DistanceMeters = distance
		segment.DurationSeconds = helper.EstimateWalkingDurationSeconds(distance)
		segment.IsEstimated = true
	} else {
		segment.DistanceMeters = result.DistanceMeters
		segment.DurationSeconds = result.DurationSeconds
		segment.IsEstimated = result.IsFallback
		segment.Fare = result.Fare
	}

	segment.DistanceText = helper.FormatDistance(segment.DistanceMeters)
	segment.DurationText = helper.FormatDuration(segment.DurationSeconds)
	return segment
}
