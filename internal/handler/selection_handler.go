package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/usecase"
)

// SelectionHandler ログインユーザーの保存データに関するHTTPハンドラー
type SelectionHandler struct {
	selectionUseCase usecase.SelectionUseCase
}

// NewSelectionHandler SelectionHandlerの新しいインスタンスを作成
func NewSelectionHandler(selectionUseCase usecase.SelectionUseCase) *SelectionHandler {
	return &SelectionHandler{selectionUseCase: selectionUseCase}
}

// ListSelections GET /api/me/selections - 保存データの一覧
func (h *SelectionHandler) ListSelections(c *gin.Context) {
	selections, err := h.selectionUseCase.List(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err, "保存データの取得に失敗しました")
		return
	}
	c.JSON(http.StatusOK, gin.H{"selections": selections})
}

// CreateSelection POST /api/me/selections - 保存データの作成
func (h *SelectionHandler) CreateSelection(c *gin.Context) {
	var req model.SaveSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	selection, err := h.selectionUseCase.Save(c.Request.Context(), CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err, "保存データの作成に失敗しました")
		return
	}
	c.JSON(http.StatusCreated, selection)
}

// DeleteSelection DELETE /api/me/selections/:id - 保存データの削除
func (h *SelectionHandler) DeleteSelection(c *gin.Context) {
	if err := h.selectionUseCase.Delete(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "保存データの削除に失敗しました")
		return
	}
	c.Status(http.StatusNoContent)
}
