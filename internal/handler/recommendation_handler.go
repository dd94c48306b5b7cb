package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/usecase"
)

// RecommendationHandler は候補セットのセッションAPIのハンドラー
type RecommendationHandler struct {
	recommendationUseCase usecase.RecommendationUseCase
}

// NewRecommendationHandler は新しいRecommendationHandlerインスタンスを作成
func NewRecommendationHandler(recommendationUseCase usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{recommendationUseCase: recommendationUseCase}
}

// PostSurvey はサーベイの回答から旅行スタイルを決めるエンドポイント
// POST /api/survey
func (h *RecommendationHandler) PostSurvey(c *gin.Context) {
	var req model.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	result, err := h.recommendationUseCase.Survey(c.Request.Context(), req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "サーベイの集計に失敗しました",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetWeather は目的地の天気と推薦メッセージを返すエンドポイント
// GET /api/weather?location=
func (h *RecommendationHandler) GetWeather(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "locationが指定されていません",
		})
		return
	}
	c.JSON(http.StatusOK, h.recommendationUseCase.GetWeather(c.Request.Context(), location))
}

// PostSession は候補セットを作成するエンドポイント
// POST /api/sessions
func (h *RecommendationHandler) PostSession(c *gin.Context) {
	var req model.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	res, err := h.recommendationUseCase.StartSession(c.Request.Context(), &req, CurrentUserID(c))
	if err != nil {
		respondError(c, err, "候補セットの作成に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetSession はセッションを取得するエンドポイント
// GET /api/sessions/:id
func (h *RecommendationHandler) GetSession(c *gin.Context) {
	res, err := h.recommendationUseCase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "セッションの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, res)
}

// PostRefresh は固定されていないスポットを入れ替えるエンドポイント
// POST /api/sessions/:id/refresh
func (h *RecommendationHandler) PostRefresh(c *gin.Context) {
	res, err := h.recommendationUseCase.Refresh(c.Request.Context(), c.Param("id"))
	if errors.Is(err, model.ErrAllPlacesLocked) && res != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "すべてのスポットが固定されています",
			"details": err.Error(),
			"notice":  res.Notice,
			"session": res.Session,
		})
		return
	}
	if err != nil {
		respondError(c, err, "候補の更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, res)
}

// PostToggleLock はスポットの固定状態を切り替えるエンドポイント
// POST /api/sessions/:id/places/:placeId/lock
func (h *RecommendationHandler) PostToggleLock(c *gin.Context) {
	res, err := h.recommendationUseCase.ToggleLock(c.Request.Context(), c.Param("id"), c.Param("placeId"))
	if err != nil {
		respondError(c, err, "固定状態の変更に失敗しました")
		return
	}
	c.JSON(http.StatusOK, res)
}

// PostSort は並び順を変更するエンドポイント
// POST /api/sessions/:id/sort
func (h *RecommendationHandler) PostSort(c *gin.Context) {
	var req model.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	mode, err := model.ParseSortMode(req.By)
	if err != nil {
		respondError(c, err, "バリデーションエラー")
		return
	}

	res, err := h.recommendationUseCase.Sort(c.Request.Context(), c.Param("id"), mode)
	if err != nil {
		respondError(c, err, "並び替えに失敗しました")
		return
	}
	c.JSON(http.StatusOK, res)
}

// PostWeather は天気を取り直してスコアを再計算するエンドポイント
// POST /api/sessions/:id/weather
func (h *RecommendationHandler) PostWeather(c *gin.Context) {
	res, err := h.recommendationUseCase.UpdateWeather(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "天気の更新に失敗しました")
		return
	}
	c.JSON(http.StatusOK, res)
}
