package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"Tripcast-App/internal/domain/helper"
	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/domain/strategy"
	"Tripcast-App/internal/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	// DefaultSearchTimeout はスポット検索全体の制限時間
	DefaultSearchTimeout = 10 * time.Second

	placeholderRating    = 4.5
	placeholderSpreadDeg = 0.02
	placeSearchProvider  = "place_search"

	NoticeTimeout   = "요청 시간이 초과되었습니다. 다시 시도해주세요."
	NoticeAllLocked = "모든 장소가 고정되어 있어 새로운 추천을 찾을 수 없습니다. 고정을 해제해주세요."
	NoticeEstimated = "일부 장소는 추천 데이터로 대체되었습니다."
)

// CandidateSelectionService は4スポットの候補セットの選定・更新・固定を行う
type CandidateSelectionService interface {
	SelectInitial(ctx context.Context, style model.TravelStyle, location string, center model.LatLng, weather *model.WeatherSnapshot) (*model.SelectionOutcome, error)
	Refresh(ctx context.Context, session *model.SelectionSession) (*model.SelectionOutcome, error)
	ToggleLock(places []model.Place, placeID string) []model.Place
}

type candidateSelectionService struct {
	searchHelper  *helper.PlaceSearchHelper
	strategies    map[model.TravelStyle]strategy.StrategyInterface
	scorer        *WeatherScorer
	metrics       *metrics.Metrics
	searchTimeout time.Duration
	randFloat     func() float64
}

// NewCandidateSelectionService は新しいCandidateSelectionServiceを作成する
// searchTimeout が0以下の場合は DefaultSearchTimeout を使う
func NewCandidateSelectionService(repo repository.PlaceSearchRepository, scorer *WeatherScorer, m *metrics.Metrics, searchTimeout time.Duration) CandidateSelectionService {
	if searchTimeout <= 0 {
		searchTimeout = DefaultSearchTimeout
	}
	return &candidateSelectionService{
		searchHelper:  helper.NewPlaceSearchHelper(repo),
		strategies:    strategy.NewStrategies(),
		scorer:        scorer,
		metrics:       m,
		searchTimeout: searchTimeout,
		randFloat:     rand.Float64,
	}
}

// searchSlot は候補セットの1枠分の検索条件
type searchSlot struct {
	category model.Category
	offset   int
}

// slotSearchResult は枠ごとの検索結果。見つからなかった枠は nil
type slotSearchResult struct {
	places   []*model.Place
	timedOut bool
}

// SelectInitial は旅行スタイルの4カテゴリについて1件ずつ候補を選び、天気スコアでソートした候補セットを返す
func (s *candidateSelectionService) SelectInitial(ctx context.Context, style model.TravelStyle, location string, center model.LatLng, weather *model.WeatherSnapshot) (*model.SelectionOutcome, error) {
	selectedStrategy, err := strategy.Resolve(s.strategies, style)
	if err != nil {
		return nil, err
	}

	categories := selectedStrategy.GetTargetCategories()
	slots := make([]searchSlot, len(categories))
	for i, c := range categories {
		slots[i] = searchSlot{category: c, offset: 0}
	}

	log.Printf("🔍 候補選定開始: style=%s, location=%s", style, location)
	result := s.searchSlots(ctx, location, slots, map[string]struct{}{})

	places := make([]model.Place, 0, model.CandidateSetSize)
	estimated := false
	for i, found := range result.places {
		if found == nil {
			places = append(places, s.buildPlaceholder(selectedStrategy, location, slots[i].category, center))
			estimated = true
			continue
		}
		places = append(places, *found)
	}

	iconCode := iconCodeOf(weather)
	s.scorer.Annotate(places, iconCode)
	helper.SortByWeatherScore(places)

	outcome := &model.SelectionOutcome{Places: places, Estimated: estimated}
	applyNotice(outcome, result.timedOut)
	log.Printf("✅ 候補選定完了: %d件 (推定=%t, タイムアウト=%t)", len(places), estimated, result.timedOut)
	return outcome, nil
}

// Refresh は固定されていない枠を新しい候補に入れ替える
// 固定スポットはそのまま先頭に残る。すべて固定されている場合は現在のセットと model.ErrAllPlacesLocked を返す
func (s *candidateSelectionService) Refresh(ctx context.Context, session *model.SelectionSession) (*model.SelectionOutcome, error) {
	selectedStrategy, err := strategy.Resolve(s.strategies, session.TravelStyle)
	if err != nil {
		return nil, err
	}

	locked := make([]model.Place, 0, len(session.Places))
	var slots []searchSlot
	for _, p := range session.Places {
		if p.Locked {
			locked = append(locked, p)
			continue
		}
		slots = append(slots, searchSlot{category: p.Category, offset: session.RefreshCount + 1})
	}

	if len(locked) >= model.CandidateSetSize {
		log.Printf("🔒 すべてのスポットが固定済みのため更新をスキップ: session=%s", session.ID)
		return &model.SelectionOutcome{
			Places: helper.ClonePlaces(session.Places),
			Notice: NoticeAllLocked,
		}, model.ErrAllPlacesLocked
	}

	// 不足している枠は戦略のカテゴリ順で補う
	categories := selectedStrategy.GetTargetCategories()
	for len(locked)+len(slots) < model.CandidateSetSize {
		slots = append(slots, searchSlot{
			category: categories[(len(locked)+len(slots))%len(categories)],
			offset:   session.RefreshCount + 1,
		})
	}

	// 現在のセットに含まれるスポットは除外し、更新ごとに別の候補が出るようにする
	exclude := make(map[string]struct{}, len(session.Places))
	for _, p := range session.Places {
		exclude[p.ID] = struct{}{}
	}

	log.Printf("🔄 候補更新開始: session=%s, 固定=%d件, 入れ替え=%d件", session.ID, len(locked), len(slots))
	result := s.searchSlots(ctx, session.Location, slots, exclude)

	fresh := make([]model.Place, 0, len(slots))
	estimated := false
	for i, found := range result.places {
		if found == nil {
			fresh = append(fresh, s.buildPlaceholder(selectedStrategy, session.Location, slots[i].category, session.Center))
			estimated = true
			continue
		}
		fresh = append(fresh, *found)
	}

	s.scorer.Annotate(fresh, session.Weather.IconCode)
	s.scorer.SortPlaces(fresh, session.SortMode)

	places := make([]model.Place, 0, model.CandidateSetSize)
	places = append(places, locked...)
	places = append(places, fresh...)

	outcome := &model.SelectionOutcome{Places: places, Estimated: estimated}
	applyNotice(outcome, result.timedOut)
	log.Printf("✅ 候補更新完了: session=%s (推定=%t, タイムアウト=%t)", session.ID, estimated, result.timedOut)
	return outcome, nil
}

// ToggleLock は指定IDのスポットの固定状態を反転した新しいスライスを返す。存在しないIDの場合は変更なし
func (s *candidateSelectionService) ToggleLock(places []model.Place, placeID string) []model.Place {
	toggled := helper.ClonePlaces(places)
	if i := helper.FindByID(toggled, placeID); i >= 0 {
		toggled[i].Locked = !toggled[i].Locked
	}
	return toggled
}

// searchSlots は枠ごとに順番に検索する。全体で searchTimeout の制限時間を持つ
// タイムアウト後の枠は検索せず nil のまま残す
func (s *candidateSelectionService) searchSlots(ctx context.Context, location string, slots []searchSlot, exclude map[string]struct{}) slotSearchResult {
	searchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	result := slotSearchResult{places: make([]*model.Place, len(slots))}
	for i, slot := range slots {
		if result.timedOut {
			break
		}

		found, err := s.searchHelper.FindCandidate(searchCtx, location, slot.category, slot.offset, exclude)
		if err != nil {
			kind := model.KindOf(err)
			if kind == model.ErrorKindTimeout || errors.Is(searchCtx.Err(), context.DeadlineExceeded) {
				kind = model.ErrorKindTimeout
				result.timedOut = true
			}
			s.metrics.RecordFallback(placeSearchProvider, kind)
			log.Printf("⚠️ スポット検索失敗のため推定データを使用: category=%s, kind=%s, error=%v", slot.category, kind, err)
			continue
		}
		if found == nil {
			s.metrics.RecordFallback(placeSearchProvider, model.ErrorKindNotFound)
			continue
		}

		exclude[found.ID] = struct{}{}
		result.places[i] = found
	}
	return result
}

// buildPlaceholder は検索結果がない枠を埋める合成スポットを作る
// 座標は中心から ±0.02° の範囲でランダム
func (s *candidateSelectionService) buildPlaceholder(st strategy.StrategyInterface, location string, category model.Category, center model.LatLng) model.Place {
	name := fmt.Sprintf("%s %s 추천", location, model.GetCategoryKoreanName(category))
	point := model.LatLngFromPoint(s.randomPointIn(center.ToPoint().Bound().Pad(placeholderSpreadDeg)))

	return model.Place{
		ID:            "placeholder-" + uuid.NewString(),
		Name:          name,
		Category:      category,
		Address:       location,
		Description:   st.BuildPlaceholderDescription(location, category),
		Rating:        placeholderRating,
		Lat:           point.Lat,
		Lng:           point.Lng,
		ImageURL:      helper.FallbackImageURL(category, name),
		IsPlaceholder: true,
	}
}

func (s *candidateSelectionService) randomPointIn(bound orb.Bound) orb.Point {
	return orb.Point{
		bound.Min.X() + s.randFloat()*(bound.Max.X()-bound.Min.X()),
		bound.Min.Y() + s.randFloat()*(bound.Max.Y()-bound.Min.Y()),
	}
}

func applyNotice(outcome *model.SelectionOutcome, timedOut bool) {
	switch {
	case timedOut:
		outcome.TimedOut = true
		outcome.Notice = NoticeTimeout
	case outcome.Estimated:
		outcome.Notice = NoticeEstimated
	}
}

func iconCodeOf(weather *model.WeatherSnapshot) string {
	if weather == nil {
		return ""
	}
	return weather.IconCode
}
