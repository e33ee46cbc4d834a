package posts

import "context"

// Service defines the business logic interface for the post lifecycle.
// Every mutation validates input, resolves the acting user, sequences the
// media store call strictly before the repository write, and returns either
// the resulting post or a typed failure.
type Service interface {
	// CreatePost creates a new post owned by the requesting actor
	// Flow: Resolve actor -> Validate content -> Upload image (if any) -> Persist
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// UpdatePost mutates an existing post; only its owner may do so
	// Flow: Load -> Ownership check -> Media delete/replace -> Persist
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)

	// DeletePost removes a post and its stored media object; only the
	// owner may delete. The media delete is confirmed before the record
	// delete - a media store failure leaves the record intact.
	DeletePost(ctx context.Context, actorID, postID int64) error
}

// Repository defines the data access interface for posts.
// The repository write is the commit point of every lifecycle operation.
type Repository interface {
	// Create inserts a new post and fills in the store-assigned id and
	// timestamps on the returned record
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post by id, ErrNotFound when absent
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update persists text/image fields and refreshes updated_at
	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes the post record, ErrNotFound when absent
	Delete(ctx context.Context, id int64) error
}
