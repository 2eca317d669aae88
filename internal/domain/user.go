package domain

import "time"

// User is the local projection of an identity owned by the auth provider.
// Bookings reference it but never own it.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	// ID is optional; when set it must match the subject the auth provider
	// puts into tokens for this user.
	ID       string
	Username string
}
