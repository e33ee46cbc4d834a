package media

import (
	"errors"
	"fmt"
)

// StoreError wraps failures from the media store that we couldn't map to
// anything more specific (transport errors, non-2xx responses, bad payloads)
type StoreError struct {
	Op         string // "upload" or "delete"
	Message    string
	StatusCode int // 0 when the request never reached the store
	Err        error
}

func (e *StoreError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("media store %s failed (%d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("media store %s failed: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError checks if error originated in the media store client
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
