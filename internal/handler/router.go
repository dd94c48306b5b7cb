package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Tripcast-App/internal/infrastructure/auth"
)

// RouterDeps はルーターの依存関係
type RouterDeps struct {
	Recommendation *RecommendationHandler
	Selection      *SelectionHandler // nil の場合は保存データAPIを登録しない
	Authenticator  auth.Authenticator
	RateLimiter    *IPRateLimiter
	Gatherer       prometheus.Gatherer
}

// NewRouter はAPIのルーティングを設定したgin.Engineを作成する
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(RateLimitMiddleware(deps.RateLimiter))
	}
	api.Use(AuthMiddleware(deps.Authenticator))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Tripcast-App"})
	})

	rec := deps.Recommendation
	api.POST("/survey", rec.PostSurvey)
	api.GET("/weather", rec.GetWeather)

	sessions := api.Group("/sessions")
	{
		sessions.POST("", rec.PostSession)
		sessions.GET("/:id", rec.GetSession)
		sessions.POST("/:id/refresh", rec.PostRefresh)
		sessions.POST("/:id/places/:placeId/lock", rec.PostToggleLock)
		sessions.POST("/:id/sort", rec.PostSort)
		sessions.POST("/:id/weather", rec.PostWeather)
		sessions.GET("/:id/route", rec.GetRoute)
		sessions.POST("/:id/route/share", rec.PostShareRoute)
	}
	api.GET("/routes/:id", rec.GetSharedRoute)

	if deps.Selection != nil {
		me := api.Group("/me", RequireUser())
		me.GET("/selections", deps.Selection.ListSelections)
		me.POST("/selections", deps.Selection.CreateSelection)
		me.DELETE("/selections/:id", deps.Selection.DeleteSelection)
	}

	return r
}
