package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Quill/internal/core/users"
)

// ProfileHandler handles user profile lookups
type ProfileHandler struct {
	service users.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.Service) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// HandleGetProfile handles GET /api/users/profile/{username}
// Returns the credential-stripped public profile.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), username)
	if err != nil {
		if users.IsNotFound(err) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("Unexpected error in profile handler: %v", err)
		http.Error(w, "An internal error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		log.Printf("Failed to encode profile response: %v", err)
	}
}
