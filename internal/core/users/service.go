package users

import (
	"context"
	"fmt"
)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// ResolveActor confirms the authenticated identity exists and returns it
func (s *userService) ResolveActor(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve actor %d: %w", id, err)
	}

	return user, nil
}

// GetByUsername retrieves a user by their username
func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByUsername(ctx, username)
}

// GetProfile retrieves the public profile for a username
func (s *userService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
