package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go"

	"Tripcast-App/internal/domain/model"
)

// Authenticator はベアラートークンからユーザーIDを解決する
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// SupabaseAuthenticator Supabase Auth（GoTrue）でトークンを検証する
type SupabaseAuthenticator struct {
	client gotrue.Client
}

// NewSupabaseAuthenticator は新しいSupabaseAuthenticatorインスタンスを作成
func NewSupabaseAuthenticator(client gotrue.Client) *SupabaseAuthenticator {
	return &SupabaseAuthenticator{client: client}
}

// Authenticate はトークンのユーザーを取得する。無効なトークンは model.ErrUnauthorized
func (a *SupabaseAuthenticator) Authenticate(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", model.ErrUnauthorized
	}

	user, err := a.client.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}
	return user.ID.String(), nil
}

// BearerToken は Authorization ヘッダーからトークンを取り出す。Bearer 形式でなければ空文字
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
