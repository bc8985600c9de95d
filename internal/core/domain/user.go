package domain

import "time"

// User is the identity record owned by the credential store.
//
// ID is assigned by the store at creation and never changes. Username is
// unique across live users (enforced by the store) and immutable after
// registration. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched; username and password are not mutable through this surface.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
}
