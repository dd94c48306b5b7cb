package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"Tripcast-App/internal/config"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/domain/service"
	"Tripcast-App/internal/handler"
	"Tripcast-App/internal/infrastructure/auth"
	"Tripcast-App/internal/infrastructure/database"
	"Tripcast-App/internal/infrastructure/firestore"
	"Tripcast-App/internal/infrastructure/maps"
	"Tripcast-App/internal/infrastructure/metrics"
	"Tripcast-App/internal/infrastructure/weather"
	repoImpl "Tripcast-App/internal/repository"
	"Tripcast-App/internal/usecase"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	// 外部プロバイダ
	mapProvider := maps.NewMapProvider(cfg.Providers.GoogleMapsAPIKey, "")
	if state := mapProvider.Load(ctx); state != maps.StateReady {
		log.Printf("⚠️ Google Mapsクライアントを利用できません (state=%s)。推定データで動作します", state)
	} else {
		log.Printf("✅ Google Mapsクライアント初期化完了")
	}

	var carDirections repository.DirectionsRepository
	if cfg.Providers.KakaoRestAPIKey != "" {
		carDirections = maps.NewKakaoDirectionsProvider(cfg.Providers.KakaoRestAPIKey)
	} else {
		log.Printf("⚠️ KAKAO_REST_API_KEYが未設定のため、自動車ルートは直線距離で推定します")
	}
	directions := maps.NewCachedDirectionsProvider(
		maps.NewRoutingDirectionsProvider(carDirections, maps.NewGoogleDirectionsProvider(mapProvider)),
		maps.DefaultDirectionsCacheTTL,
	)

	geocoder := maps.NewChainGeocoder(maps.NewGoogleGeocoder(mapProvider), maps.NewFallbackGeocoder())

	var weatherRepo repository.WeatherRepository
	if cfg.Providers.OpenWeatherAPIKey != "" {
		weatherRepo = weather.NewOpenWeatherClient(cfg.Providers.OpenWeatherAPIKey)
	} else {
		log.Printf("⚠️ OPENWEATHER_API_KEYが未設定のため、推定天気を使用します")
	}

	// セッションと天気キャッシュ
	var sessionRepo repository.SessionRepository
	var weatherCache repository.WeatherCacheRepository
	if cfg.Storage.RedisURL != "" {
		redisClient, err := repoImpl.ConnectRedis(ctx, cfg.Storage.RedisURL)
		if err != nil {
			log.Fatalf("Redis接続失敗: %v", err)
		}
		defer redisClient.Close()
		sessionRepo = repoImpl.NewRedisSessionRepository(redisClient, cfg.Storage.SessionTTL)
		weatherCache = repoImpl.NewRedisWeatherCache(redisClient, cfg.Storage.WeatherCacheTTL)
		log.Printf("✅ Redisセッションストア初期化完了")
	} else {
		sessionRepo = repoImpl.NewMemorySessionRepository(cfg.Storage.SessionTTL)
		log.Printf("📝 REDIS_URLが未設定のため、メモリ上にセッションを保持します")
	}

	// 保存データと認証
	var selectionRepo repository.SelectionRepository
	var authenticator auth.Authenticator
	if cfg.Storage.SupabaseURL != "" && cfg.Storage.SupabaseAnonKey != "" {
		supabaseClient, err := database.NewSupabaseClient(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseAnonKey)
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		authenticator = auth.NewSupabaseAuthenticator(supabaseClient.GetClient().Auth)
		selectionRepo = repoImpl.NewSupabaseSelectionRepository(supabaseClient)

		if cfg.Storage.SupabaseDBPassword != "" {
			pgClient, err := database.NewPostgreSQLClient(ctx, cfg.Storage.SupabaseURL, cfg.Storage.SupabaseDBPassword)
			if err != nil {
				log.Printf("⚠️ PostgreSQL直接接続に失敗したため、PostgRESTを使用します: %v", err)
			} else {
				defer pgClient.Close()
				if err := pgClient.EnsureSchema(ctx); err != nil {
					log.Fatalf("kv_storeテーブルの作成失敗: %v", err)
				}
				selectionRepo = repoImpl.NewPostgresSelectionRepository(pgClient)
				log.Printf("✅ PostgreSQL直接接続で保存データを扱います")
			}
		}
	} else {
		log.Printf("📝 Supabaseが未設定のため、ログインと保存データAPIは無効です")
	}

	// 共有ルート
	var snapshotRepo repository.RouteSnapshotRepository
	if cfg.Storage.FirestoreProjectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, cfg.Storage.FirestoreProjectID, cfg.Storage.FirestoreCredsFile)
		if err != nil {
			log.Printf("⚠️ Firestore初期化失敗のため、ルート共有は無効です: %v", err)
		} else {
			defer firestoreClient.Close()
			snapshotRepo = repoImpl.NewFirestoreRouteSnapshotRepository(firestoreClient.GetClient())
		}
	}

	// サービスとユースケース
	scorer := service.NewWeatherScorer(service.NewPlaceClassifier())
	selectionService := service.NewCandidateSelectionService(maps.NewGooglePlacesProvider(mapProvider), scorer, m, cfg.Selection.SearchTimeout)
	routeService := service.NewRouteAggregationService(directions, service.DurationPolicy{
		HalfDayMaxTravelMinutes: cfg.Route.HalfDayMaxTravelMinutes,
		HalfDayMaxPlaces:        cfg.Route.HalfDayMaxPlaces,
	}, cfg.Route.Concurrency, m)
	weatherService := service.NewWeatherService(geocoder, weatherRepo, weatherCache, m)

	recommendationUseCase := usecase.NewRecommendationUseCase(
		sessionRepo,
		snapshotRepo,
		selectionService,
		routeService,
		weatherService,
		service.NewSurveyService(),
		scorer,
		cfg.Route.SnapshotTTL,
	)

	deps := handler.RouterDeps{
		Recommendation: handler.NewRecommendationHandler(recommendationUseCase),
		Authenticator:  authenticator,
		RateLimiter:    handler.NewIPRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst),
		Gatherer:       registry,
	}
	if selectionRepo != nil {
		deps.Selection = handler.NewSelectionHandler(usecase.NewSelectionUseCase(selectionRepo))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Tripcast-App server starting on :%s...", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("サーバー起動失敗: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("🛑 シャットダウン中...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ シャットダウン失敗: %v", err)
	}
}
