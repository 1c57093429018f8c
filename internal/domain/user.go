package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// FriendCount is always set by the repository; Friends and Thoughts are
	// populated one level deep on the read paths that expand them.
	FriendCount int       `json:"friend_count"`
	Friends     []User    `json:"friends,omitempty"`
	Thoughts    []Thought `json:"thoughts,omitempty"`
}
