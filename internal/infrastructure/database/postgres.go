package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

// kvStoreDDL は保存データ用のキーバリューテーブル
const kvStoreDDL = `CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value JSONB NOT NULL
)`

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient SupabaseのURLとDBパスワードからPostgreSQLクライアントを作成
func NewPostgreSQLClient(ctx context.Context, supabaseURL, password string) (*PostgreSQLClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if password == "" {
		return nil, fmt.Errorf("SUPABASE_DB_PASSWORD環境変数が設定されていません")
	}

	db, err := sql.Open("postgres", SupabaseConnString(supabaseURL, password))
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}

	// 接続テスト
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("PostgreSQLへの接続に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// SupabaseConnString はSupabaseのプロジェクトURLから接続文字列を作る
// https://xxx.supabase.co -> host=db.xxx.supabase.co（ポート6543）
func SupabaseConnString(supabaseURL, password string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(supabaseURL, "https://"), "http://")
	host = strings.TrimSuffix(host, "/")
	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, password,
	)
}

// EnsureSchema は kv_store テーブルがなければ作成する
func (pc *PostgreSQLClient) EnsureSchema(ctx context.Context) error {
	if _, err := pc.DB.ExecContext(ctx, kvStoreDDL); err != nil {
		return fmt.Errorf("kv_storeテーブルの作成に失敗: %w", err)
	}
	return nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck(ctx context.Context) error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.PingContext(ctx)
}
