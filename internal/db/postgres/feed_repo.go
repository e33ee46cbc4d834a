package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"Quill/internal/core/feeds"
	"Quill/internal/core/users"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feeds.Repository {
	return &postgresFeedRepo{db: db}
}

// baseFeedQuery joins posts with their authors, newest post first.
// The password column is deliberately absent from the select list - only
// public profile fields leave this query.
const baseFeedQuery = `
	SELECT
		p.id, p.author_id, p.text, p.image_url, p.image_object_id,
		p.created_at, p.updated_at,
		u.id, u.username, u.full_name, u.profile_img
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// ListAll returns every post with owner metadata, newest first
func (r *postgresFeedRepo) ListAll(ctx context.Context) ([]*feeds.FeedPost, error) {
	query := baseFeedQuery + ` ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	return r.scanFeed(rows)
}

// ListByAuthor returns one author's posts, newest first
func (r *postgresFeedRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*feeds.FeedPost, error) {
	query := baseFeedQuery + ` WHERE p.author_id = $1 ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author feed: %w", err)
	}
	return r.scanFeed(rows)
}

func (r *postgresFeedRepo) scanFeed(rows *sql.Rows) ([]*feeds.FeedPost, error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	// Empty slice, not nil: an empty store is an empty feed, not an error
	feed := []*feeds.FeedPost{}
	for rows.Next() {
		fp := &feeds.FeedPost{Author: &users.Profile{}}
		var imageURL, imageObjectID, profileImg sql.NullString

		err := rows.Scan(
			&fp.ID, &fp.AuthorID, &fp.Text, &imageURL, &imageObjectID,
			&fp.CreatedAt, &fp.UpdatedAt,
			&fp.Author.ID, &fp.Author.Username, &fp.Author.FullName, &profileImg,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}

		if imageURL.Valid {
			fp.ImageURL = &imageURL.String
		}
		if imageObjectID.Valid {
			fp.ImageObjectID = &imageObjectID.String
		}
		if profileImg.Valid {
			fp.Author.ProfileImg = &profileImg.String
		}

		feed = append(feed, fp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed rows: %w", err)
	}

	return feed, nil
}
