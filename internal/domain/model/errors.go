package model

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrAllPlacesLocked    = errors.New("すべてのスポットが固定されているため新しい候補を探せません")
	ErrSessionNotFound    = errors.New("セッションが見つかりません")
	ErrStaleSession       = errors.New("セッションが別のリクエストで更新されました")
	ErrUnknownTravelStyle = errors.New("対応していない旅行スタイルです")
	ErrSelectionNotFound  = errors.New("保存データが見つかりません")
	ErrUnauthorized       = errors.New("ログインが必要です")
	ErrSnapshotNotFound   = errors.New("共有ルートが見つかりません（有効期限切れまたは無効なID）")
	ErrNotEnoughPlaces    = errors.New("ルートを作成するには2件以上のスポットが必要です")
	ErrSharingDisabled    = errors.New("ルート共有は設定されていません")
	ErrInvalidSortMode    = errors.New("対応していない並び順です")
	ErrInvalidSelection   = errors.New("保存データの形式が正しくありません")
	ErrInvalidLocation    = errors.New("目的地は必須です")
)

// ErrorKind 外部プロバイダ失敗の種類
type ErrorKind string

const (
	ErrorKindUnavailable   ErrorKind = "unavailable"
	ErrorKindTimeout       ErrorKind = "timeout"
	ErrorKindMalformed     ErrorKind = "malformed"
	ErrorKindNotConfigured ErrorKind = "not_configured"
	ErrorKindRateLimited   ErrorKind = "rate_limited"
	ErrorKindNotFound      ErrorKind = "not_found"
)

// ProviderError 外部プロバイダ呼び出しの失敗。呼び出し側は Kind でフォールバック方針を決める
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError は ProviderError を生成する。context のタイムアウトは Timeout として扱う
func NewProviderError(provider string, kind ErrorKind, err error) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = ErrorKindTimeout
	}
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// KindOf はエラーの種類を判定する。ProviderError でない場合は Unavailable
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}
	return ErrorKindUnavailable
}
