package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSupabaseClient(t *testing.T) {
	t.Run("URLが空の場合はエラー", func(t *testing.T) {
		_, err := NewSupabaseClient("", "anon-key")
		assert.Error(t, err)
	})

	t.Run("anonキーが空の場合はエラー", func(t *testing.T) {
		_, err := NewSupabaseClient("https://abcd.supabase.co", "")
		assert.Error(t, err)
	})

	t.Run("未初期化のクライアントはヘルスチェックに失敗", func(t *testing.T) {
		assert.Error(t, (&SupabaseClient{}).HealthCheck())
	})
}
