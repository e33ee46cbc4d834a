package feeds

import (
	"context"
	"fmt"

	"Quill/internal/core/users"
)

type feedService struct {
	repo        Repository
	userService users.Service
}

// NewFeedService creates a new feed assembler
func NewFeedService(repo Repository, userService users.Service) Service {
	return &feedService{
		repo:        repo,
		userService: userService,
	}
}

// ListAll returns every post, newest first
func (s *feedService) ListAll(ctx context.Context) ([]*FeedPost, error) {
	feed, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return feed, nil
}

// ListByUsername resolves the username first, then returns their posts
func (s *feedService) ListByUsername(ctx context.Context, username string) ([]*FeedPost, error) {
	user, err := s.userService.GetByUsername(ctx, username)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve username %q: %w", username, err)
	}

	feed, err := s.repo.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for %q: %w", username, err)
	}
	return feed, nil
}
