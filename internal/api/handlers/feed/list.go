package feed

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/core/feeds"
	"Quill/internal/core/users"
)

// ListHandler handles feed read requests
type ListHandler struct {
	service feeds.Service
}

// NewListHandler creates a new feed handler
func NewListHandler(service feeds.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleListAll handles GET /api/posts/all
// Returns every post, newest first, with owner metadata attached.
// An empty store yields an empty JSON array.
func (h *ListHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.ListAll(r.Context())
	if err != nil {
		handleFeedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// HandleListByUser handles GET /api/posts/user/{username}
// Resolves the username first; unknown usernames are 404.
func (h *ListHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		writeFeedError(w, http.StatusBadRequest, "InvalidRequest", "username is required")
		return
	}

	feed, err := h.service.ListByUsername(r.Context(), username)
	if err != nil {
		handleFeedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

func handleFeedError(w http.ResponseWriter, err error) {
	switch {
	case users.IsNotFound(err):
		writeFeedError(w, http.StatusNotFound, "UserNotFound", "User not found")
	default:
		log.Printf("Unexpected error in feed handler: %v", err)
		writeFeedError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode feed response: %v", err)
	}
}

func writeFeedError(w http.ResponseWriter, statusCode int, errorType, message string) {
	writeJSON(w, statusCode, map[string]string{
		"error":   errorType,
		"message": message,
	})
}
