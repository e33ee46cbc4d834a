package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Quill/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post and returns it with the store-assigned id and
// timestamps filled in
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, text, image_url, image_object_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID, post.Text, post.ImageURL, post.ImageObjectID).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		// Check for foreign key violation on the author reference
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return nil, fmt.Errorf("author %d not found: %w", post.AuthorID, err)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by its id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		SELECT id, author_id, text, image_url, image_object_id, created_at, updated_at
		FROM posts
		WHERE id = $1`

	var imageURL, imageObjectID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.AuthorID, &post.Text, &imageURL, &imageObjectID,
			&post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if imageURL.Valid {
		post.ImageURL = &imageURL.String
	}
	if imageObjectID.Valid {
		post.ImageObjectID = &imageObjectID.String
	}

	return post, nil
}

// Update persists the post's mutable fields and refreshes updated_at
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET text = $2, image_url = $3, image_object_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Text, post.ImageURL, post.ImageObjectID).
		Scan(&post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes the post record
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}
