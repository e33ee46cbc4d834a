package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Quill/internal/core/media"
	"Quill/internal/core/posts"
	"Quill/internal/core/users"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps lifecycle service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsNotFound(err):
		writeError(w, http.StatusNotFound, "UserNotFound", "User not found")

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case posts.IsNotOwner(err):
		writeError(w, http.StatusUnauthorized, "NotAuthorized",
			"You are not authorized to modify this post")

	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case media.IsStoreError(err):
		// Upstream object-store failure; the operation was aborted before
		// any repository write
		log.Printf("Media store error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "MediaStoreError",
			"Failed to synchronize post media")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
