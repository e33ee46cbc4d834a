package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/user"
	"Quill/internal/api/middleware"
	"Quill/internal/core/users"
)

// RegisterUserRoutes registers user profile endpoints
func RegisterUserRoutes(r chi.Router, userService users.Service, auth *middleware.AuthMiddleware) {
	profileHandler := user.NewProfileHandler(userService)

	r.Route("/api/users", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Get("/profile/{username}", profileHandler.HandleGetProfile)
	})
}
