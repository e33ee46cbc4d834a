package feeds

import (
	"Quill/internal/core/posts"
	"Quill/internal/core/users"
)

// FeedPost is a post with its owner's public metadata attached.
// The author join strips credentials - only the Profile view leaves the
// repository.
type FeedPost struct {
	posts.Post
	Author *users.Profile `json:"user"`
}
