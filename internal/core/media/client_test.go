package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStoreUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/upload", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "data:image/png;base64,AAAA", body["file"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Upload{
			URL:      "https://store.example.com/img/abc123.png",
			ObjectID: "abc123",
		})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, "test-key")
	upload, err := store.Upload(context.Background(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "https://store.example.com/img/abc123.png", upload.URL)
	assert.Equal(t, "abc123", upload.ObjectID)
}

func TestHTTPStoreUploadDerivesMissingObjectID(t *testing.T) {
	// Older store deployments only return the URL
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"url": "https://store.example.com/img/xyz789.jpg",
		})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, "test-key")
	upload, err := store.Upload(context.Background(), "payload")
	require.NoError(t, err)
	assert.Equal(t, "xyz789", upload.ObjectID)
}

func TestHTTPStoreUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, "test-key")
	_, err := store.Upload(context.Background(), "payload")
	require.Error(t, err)
	assert.True(t, IsStoreError(err))
}

func TestHTTPStoreUploadEmptyPayload(t *testing.T) {
	store := NewHTTPStore("http://unused", "test-key")
	_, err := store.Upload(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsStoreError(err))
}

func TestHTTPStoreDelete(t *testing.T) {
	var gotObjectID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/destroy", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotObjectID = body["objectId"]

		json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, "test-key")
	require.NoError(t, store.Delete(context.Background(), "abc123"))
	assert.Equal(t, "abc123", gotObjectID)
}

func TestHTTPStoreDeleteIdempotent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found result body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"result": "not found"})
			},
		},
		{
			name: "404 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			store := NewHTTPStore(srv.URL, "test-key")
			assert.NoError(t, store.Delete(context.Background(), "gone-already"))
		})
	}
}

func TestHTTPStoreDeleteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, "test-key")
	err := store.Delete(context.Background(), "abc123")
	require.Error(t, err)
	assert.True(t, IsStoreError(err))
}
