package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Quill/internal/api/middleware"
	"Quill/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/posts/create
// Request body: { "text": "...", "img": "<inline-encoded payload>" }
// Both fields are optional individually but at least one must be present.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Inline image payloads are large; 5MB matches the store's upload limit
	r.Body = http.MaxBytesReader(w, r.Body, 5*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 5MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// Author always comes from the authenticated identity, never the body
	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}
	req.AuthorID = userID

	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
