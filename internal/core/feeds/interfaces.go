package feeds

import "context"

// Service defines the read-only feed assembly interface.
// Feeds never touch the media store.
type Service interface {
	// ListAll returns every post, newest first, with owner metadata
	// attached. An empty store yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]*FeedPost, error)

	// ListByUsername returns one owner's posts, newest first.
	// Returns users.ErrUserNotFound when the username resolves to nobody.
	ListByUsername(ctx context.Context, username string) ([]*FeedPost, error)
}

// Repository defines the data access interface for feed queries
type Repository interface {
	ListAll(ctx context.Context) ([]*FeedPost, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*FeedPost, error)
}
