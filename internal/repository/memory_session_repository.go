package repository

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
)

// MemorySessionRepository プロセス内メモリを使用したセッションリポジトリ（Redis未設定時に使用）
type MemorySessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewMemorySessionRepository 新しいMemorySessionRepositoryインスタンスを作成
func NewMemorySessionRepository(ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemorySessionRepository{cache: cache.New(ttl, 10*time.Minute)}
}

func (r *MemorySessionRepository) Get(_ context.Context, id string) (*model.SelectionSession, error) {
	v, found := r.cache.Get(id)
	if !found {
		return nil, model.ErrSessionNotFound
	}
	session := cloneSession(v.(model.SelectionSession))
	return &session, nil
}

func (r *MemorySessionRepository) Save(_ context.Context, session *model.SelectionSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.SetDefault(session.ID, cloneSession(*session))
	return nil
}

func (r *MemorySessionRepository) SaveIfGeneration(_ context.Context, session *model.SelectionSession, expected int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, found := r.cache.Get(session.ID)
	if !found {
		return model.ErrSessionNotFound
	}
	if v.(model.SelectionSession).Generation != expected {
		return model.ErrStaleSession
	}
	r.cache.SetDefault(session.ID, cloneSession(*session))
	return nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

// cloneSession はスポット一覧を含めて複製する
func cloneSession(s model.SelectionSession) model.SelectionSession {
	places := make([]model.Place, len(s.Places))
	copy(places, s.Places)
	s.Places = places
	return s
}
