package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
)

// SelectionUseCase はログインユーザーの保存データ（ブックマーク・旅程・設定）を扱う
type SelectionUseCase interface {
	Save(ctx context.Context, ownerID string, req *model.SaveSelectionRequest) (*model.SavedSelection, error)
	List(ctx context.Context, ownerID string) ([]model.SavedSelection, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type selectionUseCaseImpl struct {
	selectionRepo repository.SelectionRepository
	now           func() time.Time
}

// NewSelectionUseCase は新しいSelectionUseCaseインスタンスを作成
func NewSelectionUseCase(selectionRepo repository.SelectionRepository) SelectionUseCase {
	return &selectionUseCaseImpl{selectionRepo: selectionRepo, now: time.Now}
}

func (u *selectionUseCaseImpl) Save(ctx context.Context, ownerID string, req *model.SaveSelectionRequest) (*model.SavedSelection, error) {
	if ownerID == "" {
		return nil, model.ErrUnauthorized
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: kind=%s", model.ErrInvalidSelection, req.Kind)
	}
	if len(req.Payload) == 0 || !json.Valid(req.Payload) {
		return nil, fmt.Errorf("%w: payloadがJSONではありません", model.ErrInvalidSelection)
	}

	selection := &model.SavedSelection{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      req.Kind,
		Title:     strings.TrimSpace(req.Title),
		Payload:   req.Payload,
		CreatedAt: u.now().UTC(),
	}
	if err := u.selectionRepo.Save(ctx, selection); err != nil {
		return nil, err
	}

	log.Printf("💾 保存データを作成: owner=%s, kind=%s, id=%s", ownerID, selection.Kind, selection.ID)
	return selection, nil
}

func (u *selectionUseCaseImpl) List(ctx context.Context, ownerID string) ([]model.SavedSelection, error) {
	if ownerID == "" {
		return nil, model.ErrUnauthorized
	}
	selections, err := u.selectionRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if selections == nil {
		selections = []model.SavedSelection{}
	}
	return selections, nil
}

func (u *selectionUseCaseImpl) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return model.ErrUnauthorized
	}
	return u.selectionRepo.Delete(ctx, ownerID, id)
}
