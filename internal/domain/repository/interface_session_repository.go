package repository

import (
	"context"

	"Tripcast-App/internal/domain/model"
)

// SessionRepository は候補セットのセッションを保持するリポジトリ
type SessionRepository interface {
	Get(ctx context.Context, id string) (*model.SelectionSession, error)
	Save(ctx context.Context, session *model.SelectionSession) error
	// SaveIfGeneration は保存済みの Generation が expected と一致する場合のみ保存する
	// 一致しない場合は model.ErrStaleSession
	SaveIfGeneration(ctx context.Context, session *model.SelectionSession, expected int64) error
	Delete(ctx context.Context, id string) error
}

// SelectionRepository はユーザーの保存データ（ブックマーク・旅程・設定）のリポジトリ
type SelectionRepository interface {
	Save(ctx context.Context, selection *model.SavedSelection) error
	List(ctx context.Context, ownerID string) ([]model.SavedSelection, error)
	Get(ctx context.Context, ownerID, id string) (*model.SavedSelection, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// RouteSnapshotRepository は共有ルートのリポジトリ
type RouteSnapshotRepository interface {
	Save(ctx context.Context, snapshot *model.RouteSnapshot) error
	Get(ctx context.Context, id string) (*model.RouteSnapshot, error)
}
