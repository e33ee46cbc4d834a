package post

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/api/middleware"
	"Quill/internal/core/media"
	"Quill/internal/core/posts"
	"Quill/internal/core/users"
)

// mockService implements posts.Service for handler tests
type mockService struct {
	createFunc func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error)
	updateFunc func(ctx context.Context, req posts.UpdatePostRequest) (*posts.Post, error)
	deleteFunc func(ctx context.Context, actorID, postID int64) error
}

func (m *mockService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	return m.createFunc(ctx, req)
}

func (m *mockService) UpdatePost(ctx context.Context, req posts.UpdatePostRequest) (*posts.Post, error) {
	return m.updateFunc(ctx, req)
}

func (m *mockService) DeletePost(ctx context.Context, actorID, postID int64) error {
	return m.deleteFunc(ctx, actorID, postID)
}

// newRouter mounts the handlers behind a stub auth layer injecting userID
func newRouter(svc posts.Service, userID int64) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userID != 0 {
				ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
				req = req.WithContext(ctx)
			}
			next.ServeHTTP(w, req)
		})
	})

	createHandler := NewCreateHandler(svc)
	updateHandler := NewUpdateHandler(svc)
	deleteHandler := NewDeleteHandler(svc)
	r.Post("/api/posts/create", createHandler.HandleCreate)
	r.Put("/api/posts/{postID}", updateHandler.HandleUpdate)
	r.Delete("/api/posts/{postID}", deleteHandler.HandleDelete)
	return r
}

func TestHandleCreateSuccess(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
			require.Equal(t, int64(1), req.AuthorID)
			require.Equal(t, "hello", req.Text)
			return &posts.Post{ID: 10, AuthorID: 1, Text: req.Text}, nil
		},
	}

	body, _ := json.Marshal(map[string]string{"text": "hello"})
	req := httptest.NewRequest("POST", "/api/posts/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created posts.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, int64(10), created.ID)
}

func TestHandleCreateIgnoresClientAuthorID(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
			// Author must come from the authenticated identity
			require.Equal(t, int64(1), req.AuthorID)
			return &posts.Post{ID: 10, AuthorID: 1, Text: req.Text}, nil
		},
	}

	body := []byte(`{"text":"hi","authorId":999}`)
	req := httptest.NewRequest("POST", "/api/posts/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown actor", err: users.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "empty content", err: posts.NewValidationError("text", "post must have text or image"), wantStatus: http.StatusBadRequest},
		{name: "media store down", err: &media.StoreError{Op: "upload", Message: "down"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				createFunc: func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
					return nil, tt.err
				},
			}

			body, _ := json.Marshal(map[string]string{"text": "x"})
			req := httptest.NewRequest("POST", "/api/posts/create", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			newRouter(svc, 1).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleCreateBodyTooLarge(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
			t.Fatal("service must not be called for an oversized body")
			return nil, nil
		},
	}

	// Valid JSON just over the 5MB reader limit
	payload := bytes.Repeat([]byte("A"), 5*1024*1024)
	body := append([]byte(`{"img":"`), payload...)
	body = append(body, []byte(`"}`)...)

	req := httptest.NewRequest("POST", "/api/posts/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleCreateUnauthenticated(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
			t.Fatal("service must not be called without an authenticated user")
			return nil, nil
		},
	}

	body, _ := json.Marshal(map[string]string{"text": "hello"})
	req := httptest.NewRequest("POST", "/api/posts/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc, 0).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleUpdateNotOwner(t *testing.T) {
	svc := &mockService{
		updateFunc: func(ctx context.Context, req posts.UpdatePostRequest) (*posts.Post, error) {
			return nil, posts.ErrNotOwner
		},
	}

	body, _ := json.Marshal(map[string]interface{}{"text": "edit"})
	req := httptest.NewRequest("PUT", "/api/posts/7", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc, 2).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleUpdatePassesFlags(t *testing.T) {
	var got posts.UpdatePostRequest
	svc := &mockService{
		updateFunc: func(ctx context.Context, req posts.UpdatePostRequest) (*posts.Post, error) {
			got = req
			return &posts.Post{ID: req.PostID, AuthorID: req.AuthorID, Text: "hello"}, nil
		},
	}

	body := []byte(`{"deleteImg":true}`)
	req := httptest.NewRequest("PUT", "/api/posts/7", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.DeleteImage)
	assert.Equal(t, int64(7), got.PostID)
	assert.Equal(t, int64(1), got.AuthorID)
}

func TestHandleUpdateInvalidPostID(t *testing.T) {
	svc := &mockService{}
	req := httptest.NewRequest("PUT", "/api/posts/abc", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	newRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDelete(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK},
		{name: "not found", err: posts.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "not owner", err: posts.ErrNotOwner, wantStatus: http.StatusUnauthorized},
		{name: "media failure", err: &media.StoreError{Op: "delete", Message: "down"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				deleteFunc: func(ctx context.Context, actorID, postID int64) error {
					require.Equal(t, int64(1), actorID)
					require.Equal(t, int64(7), postID)
					return tt.err
				},
			}

			req := httptest.NewRequest("DELETE", "/api/posts/7", nil)
			rec := httptest.NewRecorder()
			newRouter(svc, 1).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
