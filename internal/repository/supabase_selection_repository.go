package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/infrastructure/database"
)

// SupabaseSelectionRepository Supabase(PostgREST)の kv_store を使用した保存データリポジトリ
type SupabaseSelectionRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseSelectionRepository 新しいSupabaseSelectionRepositoryインスタンスを作成
func NewSupabaseSelectionRepository(client *database.SupabaseClient) repository.SelectionRepository {
	return &SupabaseSelectionRepository{client: client}
}

func (r *SupabaseSelectionRepository) Save(ctx context.Context, selection *model.SavedSelection) error {
	value, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("保存データのJSONマーシャル失敗: %w", err)
	}

	record := kvRecord{Key: selectionKey(selection.OwnerID, selection.ID), Value: value}
	_, _, err = r.client.GetClient().From(kvStoreTable).Upsert(record, "key", "minimal", "").Execute()
	if err != nil {
		return fmt.Errorf("保存データの作成失敗: %w", err)
	}
	return nil
}

func (r *SupabaseSelectionRepository) List(ctx context.Context, ownerID string) ([]model.SavedSelection, error) {
	data, _, err := r.client.GetClient().From(kvStoreTable).
		Select("*", "exact", false).
		Like("key", selectionPrefix(ownerID)+"*").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("保存データの取得失敗: %w", err)
	}

	var records []kvRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("保存データのJSONアンマーシャル失敗: %w", err)
	}
	return decodeSelections(records)
}

func (r *SupabaseSelectionRepository) Get(ctx context.Context, ownerID, id string) (*model.SavedSelection, error) {
	data, _, err := r.client.GetClient().From(kvStoreTable).
		Select("*", "exact", false).
		Eq("key", selectionKey(ownerID, id)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("保存データの取得失敗: %w", err)
	}

	var records []kvRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("保存データのJSONアンマーシャル失敗: %w", err)
	}
	if len(records) == 0 {
		return nil, model.ErrSelectionNotFound
	}

	selections, err := decodeSelections(records[:1])
	if err != nil {
		return nil, err
	}
	return &selections[0], nil
}

func (r *SupabaseSelectionRepository) Delete(ctx context.Context, ownerID, id string) error {
	data, _, err := r.client.GetClient().From(kvStoreTable).
		Delete("representation", "").
		Eq("key", selectionKey(ownerID, id)).
		Execute()
	if err != nil {
		return fmt.Errorf("保存データの削除失敗: %w", err)
	}

	var deleted []kvRecord
	if err := json.Unmarshal(data, &deleted); err == nil && len(deleted) == 0 {
		return model.ErrSelectionNotFound
	}
	return nil
}
