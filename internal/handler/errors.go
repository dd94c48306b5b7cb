package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Tripcast-App/internal/domain/model"
)

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// respondError はエラーの種類からステータスコードを決めてレスポンスを返す
func respondError(c *gin.Context, err error, message string) {
	var validationErr *ValidationError
	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, model.ErrUnknownTravelStyle),
		errors.Is(err, model.ErrInvalidSortMode),
		errors.Is(err, model.ErrInvalidSelection),
		errors.Is(err, model.ErrInvalidLocation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrSnapshotNotFound),
		errors.Is(err, model.ErrSelectionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrStaleSession),
		errors.Is(err, model.ErrAllPlacesLocked):
		status = http.StatusConflict
	case errors.Is(err, model.ErrNotEnoughPlaces):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrSharingDisabled):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
