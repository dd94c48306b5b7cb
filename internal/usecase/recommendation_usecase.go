package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"Tripcast-App/internal/domain/helper"
	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/domain/service"
	repoImpl "Tripcast-App/internal/repository"
)

// DefaultSnapshotTTL は共有ルートの有効期限
const DefaultSnapshotTTL = 24 * time.Hour

// RecommendationUseCase は候補セットのセッションを操作する
// 更新系の操作は読み込んだ時点の Generation で保存し、その間に別の更新があった場合は model.ErrStaleSession を返す
type RecommendationUseCase interface {
	StartSession(ctx context.Context, req *model.StartSessionRequest, ownerID string) (*model.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*model.SessionResponse, error)
	// Refresh は固定されていないスポットを入れ替える。すべて固定済みの場合は現在のセットと model.ErrAllPlacesLocked を返す
	Refresh(ctx context.Context, sessionID string) (*model.SessionResponse, error)
	ToggleLock(ctx context.Context, sessionID, placeID string) (*model.SessionResponse, error)
	Sort(ctx context.Context, sessionID string, mode model.SortMode) (*model.SessionResponse, error)
	// UpdateWeather は天気を取り直し、天気スコアを再計算する
	UpdateWeather(ctx context.Context, sessionID string) (*model.SessionResponse, error)
	BuildRoute(ctx context.Context, sessionID string, mode model.TransportMode) (*model.Route, error)
	ShareRoute(ctx context.Context, sessionID string, mode model.TransportMode) (*model.RouteSnapshot, error)
	GetSharedRoute(ctx context.Context, snapshotID string) (*model.RouteSnapshot, error)
	GetWeather(ctx context.Context, location string) *model.WeatherResponse
	Survey(ctx context.Context, answers []model.SurveyAnswer) (*model.SurveyResult, error)
}

type recommendationUseCaseImpl struct {
	sessionRepo      repository.SessionRepository
	snapshotRepo     repository.RouteSnapshotRepository
	selectionService service.CandidateSelectionService
	routeService     service.RouteAggregationService
	weatherService   service.WeatherService
	surveyService    service.SurveyService
	scorer           *service.WeatherScorer
	snapshotTTL      time.Duration
	now              func() time.Time
}

// NewRecommendationUseCase は新しいRecommendationUseCaseインスタンスを作成
// snapshotRepo が nil の場合はルート共有を無効にする
func NewRecommendationUseCase(
	sessionRepo repository.SessionRepository,
	snapshotRepo repository.RouteSnapshotRepository,
	selectionService service.CandidateSelectionService,
	routeService service.RouteAggregationService,
	weatherService service.WeatherService,
	surveyService service.SurveyService,
	scorer *service.WeatherScorer,
	snapshotTTL time.Duration,
) RecommendationUseCase {
	if snapshotTTL <= 0 {
		snapshotTTL = DefaultSnapshotTTL
	}
	return &recommendationUseCaseImpl{
		sessionRepo:      sessionRepo,
		snapshotRepo:     snapshotRepo,
		selectionService: selectionService,
		routeService:     routeService,
		weatherService:   weatherService,
		surveyService:    surveyService,
		scorer:           scorer,
		snapshotTTL:      snapshotTTL,
		now:              time.Now,
	}
}

func (u *recommendationUseCaseImpl) StartSession(ctx context.Context, req *model.StartSessionRequest, ownerID string) (*model.SessionResponse, error) {
	style, err := model.ParseTravelStyle(req.TravelStyle)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, req.TravelStyle)
	}
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, model.ErrInvalidLocation
	}

	log.Printf("🚀 セッション作成開始 (スタイル: %s, 目的地: %s)", style, location)

	center := u.weatherService.Locate(ctx, location)
	weather := u.weatherService.GetWeatherAt(ctx, location, center)

	outcome, err := u.selectionService.SelectInitial(ctx, style, location, center, &weather)
	if err != nil {
		return nil, fmt.Errorf("候補の選定に失敗: %w", err)
	}

	now := u.now()
	session := &model.SelectionSession{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		TravelStyle: style,
		Location:    location,
		Center:      center,
		Weather:     weather,
		Places:      outcome.Places,
		Generation:  1,
		SortMode:    model.SortByWeather,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("セッションの保存に失敗: %w", err)
	}

	if req.PreviousSessionID != "" && req.PreviousSessionID != session.ID {
		if err := u.sessionRepo.Delete(ctx, req.PreviousSessionID); err != nil {
			log.Printf("⚠️ 古いセッションの削除に失敗: %s, error=%v", req.PreviousSessionID, err)
		}
	}

	log.Printf("✅ セッション作成完了: %s", session.ID)
	return u.toResponse(session, outcome), nil
}

func (u *recommendationUseCaseImpl) GetSession(ctx context.Context, sessionID string) (*model.SessionResponse, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.toResponse(session, nil), nil
}

func (u *recommendationUseCaseImpl) Refresh(ctx context.Context, sessionID string) (*model.SessionResponse, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := u.selectionService.Refresh(ctx, session)
	if errors.Is(err, model.ErrAllPlacesLocked) {
		return u.toResponse(session, outcome), err
	}
	if err != nil {
		return nil, fmt.Errorf("候補の更新に失敗: %w", err)
	}

	expected := session.Generation
	session.Places = outcome.Places
	session.RefreshCount++
	if err := u.commit(ctx, session, expected); err != nil {
		return nil, err
	}
	return u.toResponse(session, outcome), nil
}

func (u *recommendationUseCaseImpl) ToggleLock(ctx context.Context, sessionID, placeID string) (*model.SessionResponse, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !helper.ContainsID(session.Places, placeID) {
		return u.toResponse(session, nil), nil
	}

	expected := session.Generation
	session.Places = u.selectionService.ToggleLock(session.Places, placeID)
	if err := u.commit(ctx, session, expected); err != nil {
		return nil, err
	}
	return u.toResponse(session, nil), nil
}

func (u *recommendationUseCaseImpl) Sort(ctx context.Context, sessionID string, mode model.SortMode) (*model.SessionResponse, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	expected := session.Generation
	places := helper.ClonePlaces(session.Places)
	u.scorer.SortPlaces(places, mode)
	helper.SortLockedFirst(places)
	session.Places = places
	session.SortMode = mode
	if err := u.commit(ctx, session, expected); err != nil {
		return nil, err
	}
	return u.toResponse(session, nil), nil
}

func (u *recommendationUseCaseImpl) UpdateWeather(ctx context.Context, sessionID string) (*model.SessionResponse, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	weather := u.weatherService.GetWeatherAt(ctx, session.Location, session.Center)
	expected := session.Generation
	places := helper.ClonePlaces(session.Places)
	u.scorer.Rescore(places, weather.IconCode)
	u.scorer.SortPlaces(places, session.SortMode)
	helper.SortLockedFirst(places)
	session.Weather = weather
	session.Places = places
	if err := u.commit(ctx, session, expected); err != nil {
		return nil, err
	}

	log.Printf("🌤️ 天気を更新: session=%s, icon=%s", session.ID, weather.IconCode)
	return u.toResponse(session, nil), nil
}

func (u *recommendationUseCaseImpl) BuildRoute(ctx context.Context, sessionID string, mode model.TransportMode) (*model.Route, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if mode == "" {
		mode = model.TransportModeWalk
	}

	// スポットの並びと移動手段が同じで、推定区間を含まなければ前回のルートを使う
	if cached := session.Route; cached != nil && cached.TransportMode == mode && !cached.HasEstimatedSegments &&
		helper.SameIDSequence(cached.Places, session.Places) {
		route := *cached
		route.Places = helper.ClonePlaces(session.Places)
		return &route, nil
	}

	route, err := u.routeService.BuildRoute(ctx, session.Places, mode)
	if err != nil {
		return nil, fmt.Errorf("ルートの作成に失敗: %w", err)
	}
	if route == nil {
		return nil, model.ErrNotEnoughPlaces
	}

	expected := session.Generation
	session.Route = route
	if err := u.commit(ctx, session, expected); err != nil {
		return nil, err
	}
	return route, nil
}

func (u *recommendationUseCaseImpl) ShareRoute(ctx context.Context, sessionID string, mode model.TransportMode) (*model.RouteSnapshot, error) {
	if u.snapshotRepo == nil {
		return nil, model.ErrSharingDisabled
	}

	route, err := u.BuildRoute(ctx, sessionID, mode)
	if err != nil {
		return nil, err
	}

	now := u.now()
	snapshot := &model.RouteSnapshot{
		ID:        uuid.NewString(),
		Route:     route,
		Bounds:    repoImpl.RouteBoundsWKT(route.Places),
		CreatedAt: now,
		ExpireAt:  now.Add(u.snapshotTTL),
	}
	if err := u.snapshotRepo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("共有ルートの保存に失敗: %w", err)
	}
	return snapshot, nil
}

func (u *recommendationUseCaseImpl) GetSharedRoute(ctx context.Context, snapshotID string) (*model.RouteSnapshot, error) {
	if u.snapshotRepo == nil {
		return nil, model.ErrSharingDisabled
	}
	return u.snapshotRepo.Get(ctx, snapshotID)
}

func (u *recommendationUseCaseImpl) GetWeather(ctx context.Context, location string) *model.WeatherResponse {
	weather := u.weatherService.GetWeather(ctx, strings.TrimSpace(location))
	return &model.WeatherResponse{
		Weather:        weather,
		WeatherMessage: u.scorer.RecommendationMessage(weather.IconCode),
	}
}

func (u *recommendationUseCaseImpl) Survey(_ context.Context, answers []model.SurveyAnswer) (*model.SurveyResult, error) {
	return u.surveyService.Evaluate(answers)
}

// commit は Generation を進めて保存する。読み込み後に別の更新があった場合は model.ErrStaleSession
func (u *recommendationUseCaseImpl) commit(ctx context.Context, session *model.SelectionSession, expected int64) error {
	session.Generation = expected + 1
	session.UpdatedAt = u.now()
	if err := u.sessionRepo.SaveIfGeneration(ctx, session, expected); err != nil {
		if errors.Is(err, model.ErrStaleSession) {
			log.Printf("⚠️ 古い結果を破棄: session=%s, generation=%d", session.ID, expected)
		}
		return err
	}
	return nil
}

func (u *recommendationUseCaseImpl) toResponse(session *model.SelectionSession, outcome *model.SelectionOutcome) *model.SessionResponse {
	res := &model.SessionResponse{
		Session:        session,
		WeatherMessage: u.scorer.RecommendationMessage(session.Weather.IconCode),
	}
	if outcome != nil {
		res.Notice = outcome.Notice
		res.TimedOut = outcome.TimedOut
		res.Estimated = outcome.Estimated
	}
	return res
}
