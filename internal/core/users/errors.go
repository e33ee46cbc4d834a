package users

import (
	"errors"
)

// Sentinel errors for user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to register a username
	// that belongs to another user
	ErrUsernameTaken = errors.New("username already taken")
)

// IsNotFound checks if error means the user does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
