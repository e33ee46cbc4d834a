package users

import "context"

// Repository defines the interface for user data persistence.
// Create is used by the seed utility only; the server itself never
// registers accounts (authentication is an external capability).
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// Service defines the interface for user business logic.
// It doubles as the actor resolver: mutating operations confirm the
// requesting actor exists before doing anything else.
type Service interface {
	// ResolveActor confirms an authenticated identity maps to an existing
	// user and returns it. Returns ErrUserNotFound otherwise.
	ResolveActor(ctx context.Context, id int64) (*User, error)

	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetProfile retrieves the credential-stripped profile for a username
	GetProfile(ctx context.Context, username string) (*Profile, error)
}
