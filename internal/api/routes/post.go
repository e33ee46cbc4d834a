package routes

import (
	"github.com/go-chi/chi/v5"

	"Quill/internal/api/handlers/feed"
	"Quill/internal/api/handlers/post"
	"Quill/internal/api/middleware"
	"Quill/internal/core/feeds"
	"Quill/internal/core/posts"
)

// RegisterPostRoutes registers post lifecycle and feed endpoints.
// Every route requires authentication - the feed is only visible to
// signed-in users, matching the reference behavior.
func RegisterPostRoutes(r chi.Router, postService posts.Service, feedService feeds.Service, auth *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(postService)
	updateHandler := post.NewUpdateHandler(postService)
	deleteHandler := post.NewDeleteHandler(postService)
	listHandler := feed.NewListHandler(feedService)

	r.Route("/api/posts", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Get("/all", listHandler.HandleListAll)
		r.Get("/user/{username}", listHandler.HandleListByUser)
		r.Post("/create", createHandler.HandleCreate)
		r.Put("/{postID}", updateHandler.HandleUpdate)
		r.Delete("/{postID}", deleteHandler.HandleDelete)
	})
}
