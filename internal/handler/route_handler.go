package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Tripcast-App/internal/domain/model"
)

// transportModeFromQuery は mode クエリパラメータを検証する
func transportModeFromQuery(c *gin.Context) (model.TransportMode, error) {
	mode, err := model.ParseTransportMode(c.Query("mode"))
	if err != nil {
		return "", &ValidationError{Field: "mode", Message: "modeは'walk'、'car'、'transit'のいずれかを指定してください"}
	}
	return mode, nil
}

// GetRoute は候補セットからルートを作成するエンドポイント
// GET /api/sessions/:id/route?mode=walk|car|transit
func (h *RecommendationHandler) GetRoute(c *gin.Context) {
	mode, err := transportModeFromQuery(c)
	if err != nil {
		respondError(c, err, "バリデーションエラー")
		return
	}

	route, err := h.recommendationUseCase.BuildRoute(c.Request.Context(), c.Param("id"), mode)
	if err != nil {
		respondError(c, err, "ルートの作成に失敗しました")
		return
	}
	c.JSON(http.StatusOK, route)
}

// PostShareRoute はルートを共有用に保存するエンドポイント
// POST /api/sessions/:id/route/share?mode=
func (h *RecommendationHandler) PostShareRoute(c *gin.Context) {
	mode, err := transportModeFromQuery(c)
	if err != nil {
		respondError(c, err, "バリデーションエラー")
		return
	}

	snapshot, err := h.recommendationUseCase.ShareRoute(c.Request.Context(), c.Param("id"), mode)
	if err != nil {
		respondError(c, err, "ルートの共有に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// GetSharedRoute は共有ルートを取得するエンドポイント
// GET /api/routes/:id
func (h *RecommendationHandler) GetSharedRoute(c *gin.Context) {
	snapshotID := c.Param("id")
	if snapshotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "route_idが指定されていません",
		})
		return
	}

	snapshot, err := h.recommendationUseCase.GetSharedRoute(c.Request.Context(), snapshotID)
	if err != nil {
		respondError(c, err, "共有ルートの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
