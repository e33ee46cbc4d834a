package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/feeds"
	"Quill/internal/core/users"
)

type mockFeedService struct {
	all    []*feeds.FeedPost
	byUser map[string][]*feeds.FeedPost
}

func (m *mockFeedService) ListAll(ctx context.Context) ([]*feeds.FeedPost, error) {
	return m.all, nil
}

func (m *mockFeedService) ListByUsername(ctx context.Context, username string) ([]*feeds.FeedPost, error) {
	if feed, ok := m.byUser[username]; ok {
		return feed, nil
	}
	return nil, users.ErrUserNotFound
}

func newRouter(svc feeds.Service) http.Handler {
	h := NewListHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/posts/all", h.HandleListAll)
	r.Get("/api/posts/user/{username}", h.HandleListByUser)
	return r
}

func TestHandleListAllEmptyStore(t *testing.T) {
	r := newRouter(&mockFeedService{all: []*feeds.FeedPost{}})

	req := httptest.NewRequest("GET", "/api/posts/all", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Empty store serializes as an empty JSON array, not null
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleListByUserUnknown(t *testing.T) {
	r := newRouter(&mockFeedService{byUser: map[string][]*feeds.FeedPost{}})

	req := httptest.NewRequest("GET", "/api/posts/user/ghost", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListByUserStripsCredentials(t *testing.T) {
	img := "https://store/img/p.jpg"
	r := newRouter(&mockFeedService{byUser: map[string][]*feeds.FeedPost{
		"alice": {
			{Author: &users.Profile{ID: 1, Username: "alice", FullName: "Alice A", ProfileImg: &img}},
		},
	}})

	req := httptest.NewRequest("GET", "/api/posts/user/alice", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload []map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Len(t, payload, 1)

	var author map[string]interface{}
	require.NoError(t, json.Unmarshal(payload[0]["user"], &author))
	assert.Equal(t, "alice", author["username"])
	assert.NotContains(t, author, "password")
}
