package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/gotrue-go"

	"Tripcast-App/internal/domain/model"
)

const testUserID = "5f1c2b7e-8a4d-4c1e-9b0a-2d3e4f5a6b7c"

func newFakeGoTrue(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer valid-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"msg":"invalid JWT"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + testUserID + `","aud":"authenticated","role":"authenticated","email":"traveler@example.com"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSupabaseAuthenticator(t *testing.T) {
	server := newFakeGoTrue(t)
	client := gotrue.New("test-project", "anon-key").WithCustomGoTrueURL(server.URL)
	authenticator := NewSupabaseAuthenticator(client)

	t.Run("有効なトークンはユーザーIDを返す", func(t *testing.T) {
		userID, err := authenticator.Authenticate(context.Background(), "valid-token")
		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("無効なトークンはErrUnauthorized", func(t *testing.T) {
		_, err := authenticator.Authenticate(context.Background(), "expired-token")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("空のトークンはErrUnauthorized", func(t *testing.T) {
		_, err := authenticator.Authenticate(context.Background(), "  ")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc"))
	assert.Empty(t, BearerToken("Basic abc"))
	assert.Empty(t, BearerToken("Bearer "))
	assert.Empty(t, BearerToken(""))
}
