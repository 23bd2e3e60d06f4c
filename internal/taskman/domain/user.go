package domain

import "time"

type User struct {
	ID        string
	Username  string // unique across all users
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries a partial update for a user. Nil fields are left
// untouched by the store.
type UserUpdate struct {
	Username  *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.FirstName == nil && u.LastName == nil
}
