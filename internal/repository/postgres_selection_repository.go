package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
	"Tripcast-App/internal/infrastructure/database"
)

// PostgresSelectionRepository PostgreSQL直接接続で kv_store を使用する保存データリポジトリ
type PostgresSelectionRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresSelectionRepository 新しいPostgresSelectionRepositoryインスタンスを作成
func NewPostgresSelectionRepository(client *database.PostgreSQLClient) repository.SelectionRepository {
	return &PostgresSelectionRepository{client: client}
}

func (r *PostgresSelectionRepository) Save(ctx context.Context, selection *model.SavedSelection) error {
	value, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("保存データのJSONマーシャル失敗: %w", err)
	}

	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := r.client.DB.ExecContext(ctx, query, selectionKey(selection.OwnerID, selection.ID), string(value)); err != nil {
		return fmt.Errorf("保存データの作成失敗: %w", err)
	}
	return nil
}

func (r *PostgresSelectionRepository) List(ctx context.Context, ownerID string) ([]model.SavedSelection, error) {
	query := `SELECT key, value FROM kv_store WHERE key LIKE $1 ESCAPE '\' ORDER BY key`

	rows, err := r.client.DB.QueryContext(ctx, query, escapeLike(selectionPrefix(ownerID))+"%")
	if err != nil {
		return nil, fmt.Errorf("保存データの取得失敗: %w", err)
	}
	defer rows.Close()

	var records []kvRecord
	for rows.Next() {
		var rec kvRecord
		var value []byte
		if err := rows.Scan(&rec.Key, &value); err != nil {
			return nil, fmt.Errorf("保存データのスキャン失敗: %w", err)
		}
		rec.Value = value
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("保存データの取得失敗: %w", err)
	}
	return decodeSelections(records)
}

func (r *PostgresSelectionRepository) Get(ctx context.Context, ownerID, id string) (*model.SavedSelection, error) {
	var value []byte
	err := r.client.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, selectionKey(ownerID, id)).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSelectionNotFound
		}
		return nil, fmt.Errorf("保存データの取得失敗: %w", err)
	}

	var selection model.SavedSelection
	if err := json.Unmarshal(value, &selection); err != nil {
		return nil, fmt.Errorf("保存データのJSONアンマーシャル失敗: %w", err)
	}
	return &selection, nil
}

func (r *PostgresSelectionRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.client.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, selectionKey(ownerID, id))
	if err != nil {
		return fmt.Errorf("保存データの削除失敗: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return model.ErrSelectionNotFound
	}
	return nil
}
