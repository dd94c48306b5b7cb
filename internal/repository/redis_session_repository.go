package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
)

// DefaultSessionTTL はセッションの保持時間
const DefaultSessionTTL = 2 * time.Hour

// RedisSessionRepository Redisを使用したセッションリポジトリ
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository 新しいRedisSessionRepositoryインスタンスを作成
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisSessionRepository{client: client, ttl: ttl}
}

// ConnectRedis はURLを解析してクライアントを作成し、PINGで接続を確認する
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("Redis URLの解析に失敗: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redisへの接続に失敗: %w", err)
	}
	return client, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*model.SelectionSession, error) {
	val, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("セッションの取得に失敗: %w", err)
	}

	var session model.SelectionSession
	if err := json.Unmarshal(val, &session); err != nil {
		return nil, fmt.Errorf("セッションのJSONアンマーシャル失敗: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *model.SelectionSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("セッションのJSONマーシャル失敗: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("セッションの保存に失敗: %w", err)
	}
	return nil
}

// SaveIfGeneration は WATCH で保存済みの世代を確認してから書き込む
func (r *RedisSessionRepository) SaveIfGeneration(ctx context.Context, session *model.SelectionSession, expected int64) error {
	key := sessionKey(session.ID)
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("セッションのJSONマーシャル失敗: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrSessionNotFound
			}
			return err
		}

		var current model.SelectionSession
		if err := json.Unmarshal(val, &current); err != nil {
			return fmt.Errorf("セッションのJSONアンマーシャル失敗: %w", err)
		}
		if current.Generation != expected {
			return model.ErrStaleSession
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return model.ErrStaleSession
	case errors.Is(err, model.ErrStaleSession), errors.Is(err, model.ErrSessionNotFound):
		return err
	default:
		return fmt.Errorf("セッションの保存に失敗: %w", err)
	}
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("セッションの削除に失敗: %w", err)
	}
	return nil
}
