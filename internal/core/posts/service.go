package posts

import (
	"context"
	"fmt"
	"log"

	"Quill/internal/core/media"
	"Quill/internal/core/users"
)

type postService struct {
	repo        Repository
	userService users.Service
	store       media.Store
}

// NewPostService creates a new post lifecycle service.
// All collaborators are injected - the service owns no connection state.
func NewPostService(repo Repository, userService users.Service, store media.Store) Service {
	return &postService{
		repo:        repo,
		userService: userService,
		store:       store,
	}
}

// CreatePost creates a new post owned by the requesting actor
// Flow:
// 1. Resolve actor (404 if the authenticated id maps to no user)
// 2. Validate content: text or image required
// 3. If an image payload was supplied, upload it to the media store first
// 4. Persist the record; the insert is the commit point
// A media store failure aborts before anything is persisted, so no post
// ever references a never-uploaded image.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	// 1. Resolve actor
	actor, err := s.userService.ResolveActor(ctx, req.AuthorID)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	// 2. Validate content before any side effect
	if req.Text == "" && req.ImageData == "" {
		return nil, NewValidationError("text", "post must have text or image")
	}

	post := &Post{
		AuthorID: actor.ID,
		Text:     req.Text,
	}

	// 3. Upload image before creating the record
	if req.ImageData != "" {
		upload, err := s.store.Upload(ctx, req.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to upload post image: %w", err)
		}
		post.ImageURL = &upload.URL
		post.ImageObjectID = &upload.ObjectID
	}

	// 4. Persist; commit point
	created, err := s.repo.Create(ctx, post)
	if err != nil {
		if post.ImageObjectID != nil {
			// The upload already succeeded and is not rolled back here.
			// Log the orphaned object for offline reconciliation.
			log.Printf("[POST-CREATE] orphaned media object after failed insert: %s", *post.ImageObjectID)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Printf("[POST-CREATE] Author: %d, Post: %d, hasImage=%v", actor.ID, created.ID, created.HasImage())
	return created, nil
}

// UpdatePost mutates an existing post on behalf of its owner
// Image outcomes are mutually exclusive, in this precedence:
// 1. DeleteImage set and an image exists: delete the stored object, clear the URL
// 2. ImageData supplied and different from the stored reference: delete the
//    old object (if any), upload the new payload
// 3. Neither: image unchanged
// Any media store failure aborts before the record is written; the post
// keeps its pre-update state.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	// Load and authorize before touching anything
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != req.AuthorID {
		return nil, ErrNotOwner
	}

	switch {
	case req.DeleteImage && post.HasImage():
		if err := s.deleteStoredImage(ctx, post); err != nil {
			return nil, err
		}
		post.ImageURL = nil
		post.ImageObjectID = nil

	case req.ImageData != "" && (!post.HasImage() || req.ImageData != *post.ImageURL):
		if post.HasImage() {
			if err := s.deleteStoredImage(ctx, post); err != nil {
				return nil, err
			}
		}
		upload, err := s.store.Upload(ctx, req.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to upload replacement image: %w", err)
		}
		post.ImageURL = &upload.URL
		post.ImageObjectID = &upload.ObjectID
	}

	// Empty text is a no-op on the field, not a clearing operation
	if req.Text != "" {
		post.Text = req.Text
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	log.Printf("[POST-UPDATE] Actor: %d, Post: %d, deleteImg=%v", req.AuthorID, req.PostID, req.DeleteImage)
	return updated, nil
}

// DeletePost removes a post and its stored media object
// The media delete is issued and confirmed before the record delete: if the
// media store call fails, the record is left intact rather than orphaning a
// post whose media status is unknown. An already-absent object is fine -
// the store's delete is idempotent.
func (s *postService) DeletePost(ctx context.Context, actorID, postID int64) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrNotOwner
	}

	if post.HasImage() {
		if err := s.deleteStoredImage(ctx, post); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	log.Printf("[POST-DELETE] Actor: %d, Post: %d", actorID, postID)
	return nil
}

// deleteStoredImage removes the post's current media object.
// Prefers the object id persisted at upload time; falls back to deriving it
// from the URL for rows written before the id column existed.
func (s *postService) deleteStoredImage(ctx context.Context, post *Post) error {
	objectID := ""
	if post.ImageObjectID != nil {
		objectID = *post.ImageObjectID
	}
	if objectID == "" {
		objectID = media.ObjectIDFromURL(*post.ImageURL)
	}

	if err := s.store.Delete(ctx, objectID); err != nil {
		return fmt.Errorf("failed to delete media object %s: %w", objectID, err)
	}
	return nil
}
