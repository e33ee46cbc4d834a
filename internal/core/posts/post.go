package posts

import (
	"time"
)

// Post represents a user-authored content record in the Quill database.
// A post always has non-empty text or a live image; the create path rejects
// anything with neither before any side effect.
//
// ImageObjectID is the media store identifier persisted alongside the URL
// at upload time, so deletes never have to re-derive it from the URL.
type Post struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	Text          string    `json:"text" db:"text"`
	ImageURL      *string   `json:"img,omitempty" db:"image_url"`
	ImageObjectID *string   `json:"-" db:"image_object_id"`
	ID            int64     `json:"id" db:"id"`
	AuthorID      int64     `json:"authorId" db:"author_id"`
}

// HasImage reports whether the post currently references a stored object
func (p *Post) HasImage() bool {
	return p.ImageURL != nil && *p.ImageURL != ""
}

// CreatePostRequest represents input for creating a new post.
// ImageData, when set, is an inline-encoded image payload (a data URI),
// not a URL - the service uploads it before persisting anything.
type CreatePostRequest struct {
	Text      string `json:"text,omitempty"`
	ImageData string `json:"img,omitempty"`
	AuthorID  int64  `json:"-"`
}

// UpdatePostRequest represents input for updating an existing post.
// Image handling is mutually exclusive, in this precedence:
//  1. DeleteImage set and the post has an image: remove it
//  2. ImageData set and different from the stored reference: replace it
//  3. otherwise the image is left unchanged
//
// An empty Text leaves the stored text untouched; updates cannot clear text.
type UpdatePostRequest struct {
	Text        string `json:"text,omitempty"`
	ImageData   string `json:"img,omitempty"`
	DeleteImage bool   `json:"deleteImg,omitempty"`
	PostID      int64  `json:"-"`
	AuthorID    int64  `json:"-"`
}
