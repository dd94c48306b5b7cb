package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/infrastructure/database"
)

// fakePostgREST は kv_store テーブルだけを扱う最小限のPostgREST
type fakePostgREST struct {
	mu   sync.Mutex
	rows map[string]json.RawMessage
}

func (f *fakePostgREST) match(filter string) []kvRecord {
	var out []kvRecord
	for k, v := range f.rows {
		switch {
		case strings.HasPrefix(filter, "eq."):
			if k == strings.TrimPrefix(filter, "eq.") {
				out = append(out, kvRecord{Key: k, Value: v})
			}
		case strings.HasPrefix(filter, "like."):
			if strings.HasPrefix(k, strings.TrimSuffix(strings.TrimPrefix(filter, "like."), "*")) {
				out = append(out, kvRecord{Key: k, Value: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !strings.HasSuffix(r.URL.Path, "/rest/v1/kv_store") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(f.match(r.URL.Query().Get("key")))
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		var rec kvRecord
		if err := json.Unmarshal(body, &rec); err != nil {
			var recs []kvRecord
			if err := json.Unmarshal(body, &recs); err != nil || len(recs) == 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			rec = recs[0]
		}
		f.rows[rec.Key] = rec.Value
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("[]"))
	case http.MethodDelete:
		matched := f.match(r.URL.Query().Get("key"))
		for _, rec := range matched {
			delete(f.rows, rec.Key)
		}
		if matched == nil {
			matched = []kvRecord{}
		}
		_ = json.NewEncoder(w).Encode(matched)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestSupabaseSelectionRepository(t *testing.T) {
	fake := &fakePostgREST{rows: map[string]json.RawMessage{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	client, err := database.NewSupabaseClient(srv.URL, "anon-key")
	require.NoError(t, err)
	repo := NewSupabaseSelectionRepository(client)
	ctx := context.Background()

	older := &model.SavedSelection{
		ID: "s1", OwnerID: "user-1", Kind: model.SelectionKindBookmark, Title: "제주 카페",
		Payload: json.RawMessage(`{"place_id":"p1"}`), CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &model.SavedSelection{
		ID: "s2", OwnerID: "user-1", Kind: model.SelectionKindItinerary, Title: "힐링 코스",
		Payload: json.RawMessage(`{"place_ids":["p1","p2"]}`), CreatedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	other := &model.SavedSelection{
		ID: "s3", OwnerID: "user-2", Kind: model.SelectionKindPreference,
		Payload: json.RawMessage(`{"style":"healing"}`), CreatedAt: time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
	}

	for _, s := range []*model.SavedSelection{older, newer, other} {
		require.NoError(t, repo.Save(ctx, s))
	}
	assert.Contains(t, fake.rows, "selection:user-1:s1")

	t.Run("所有者ごとに新しい順で一覧を返す", func(t *testing.T) {
		list, err := repo.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "s2", list[0].ID)
		assert.Equal(t, "s1", list[1].ID)
	})

	t.Run("IDで取得する", func(t *testing.T) {
		got, err := repo.Get(ctx, "user-1", "s1")
		require.NoError(t, err)
		assert.Equal(t, "제주 카페", got.Title)
		assert.JSONEq(t, `{"place_id":"p1"}`, string(got.Payload))

		_, err = repo.Get(ctx, "user-2", "s1")
		assert.ErrorIs(t, err, model.ErrSelectionNotFound)
	})

	t.Run("削除する", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "user-1", "s1"))
		_, err := repo.Get(ctx, "user-1", "s1")
		assert.ErrorIs(t, err, model.ErrSelectionNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "user-1", "s1"), model.ErrSelectionNotFound)
	})
}

func TestSelectionKeyHelpers(t *testing.T) {
	assert.Equal(t, "selection:user-1:s1", selectionKey("user-1", "s1"))
	assert.Equal(t, `selection:a\_b\%:`, escapeLike(selectionPrefix("a_b%")))
}
