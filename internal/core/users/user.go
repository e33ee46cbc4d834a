package users

import (
	"time"
)

// User represents an account in the Quill database.
// Password is the stored credential hash - it is never serialized and is
// stripped from every joined read (feeds, profiles).
type User struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	Username   string    `json:"username" db:"username"`
	FullName   string    `json:"fullName" db:"full_name"`
	Password   string    `json:"-" db:"password"`
	ProfileImg *string   `json:"profileImg,omitempty" db:"profile_img"`
	ID         int64     `json:"id" db:"id"`
}

// Profile is the credential-stripped view of a user attached to feed posts
// and returned from profile lookups
type Profile struct {
	Username   string  `json:"username"`
	FullName   string  `json:"fullName"`
	ProfileImg *string `json:"profileImg,omitempty"`
	ID         int64   `json:"id"`
}

// Profile returns the public view of the user
func (u *User) Profile() *Profile {
	return &Profile{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		ProfileImg: u.ProfileImg,
	}
}
