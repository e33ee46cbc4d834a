package media

import (
	"context"
	"strings"
)

// Upload is the result of a successful media upload.
// The store returns both the durable URL and the object identifier it
// derived from it, so callers persist the pair and never have to re-parse
// the URL when the object is later deleted.
type Upload struct {
	URL      string `json:"url"`
	ObjectID string `json:"objectId"`
}

// Store defines the interface for the remote media object store.
// Upload either returns a durable URL or stores nothing; Delete is
// idempotent - deleting an object that no longer exists is not an error.
type Store interface {
	// Upload stores an inline-encoded image payload and returns its
	// durable URL together with the derived object identifier
	Upload(ctx context.Context, payload string) (*Upload, error)

	// Delete removes a previously stored object by its identifier
	Delete(ctx context.Context, objectID string) error
}

// ObjectIDFromURL derives the media object identifier from a stored URL:
// the final path component up to its first period.
// e.g. "https://store.example.com/img/abc123.jpg" -> "abc123"
//
// Kept as a fallback for rows persisted before the object id was stored
// alongside the URL. The rule must match the identifier scheme used at
// upload time; a mismatch makes deletes target a non-existent object,
// which the store treats as a no-op.
func ObjectIDFromURL(url string) string {
	last := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		last = url[i+1:]
	}
	if i := strings.Index(last, "."); i >= 0 {
		return last[:i]
	}
	return last
}
