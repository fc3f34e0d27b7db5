// Package identity talks to the hosted identity service that owns user
// records. This service stores each user's preferences there as an opaque
// string; no user data is persisted locally.
package identity

import (
	"context"
	"errors"
	"time"
)

// Request headers expected by the identity service.
const (
	ProjectHeader = "X-Identity-Project"
	KeyHeader     = "X-Identity-Key"
)

// ErrUserNotFound reports that the identity service has no record for the
// requested user id.
var ErrUserNotFound = errors.New("identity: user not found")

// User is the identity service's user record, reduced to the fields this
// service consumes.
type User struct {
	ID          string    `json:"id"`
	Preferences string    `json:"preferences"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UsersAPI defines the identity-service operations consumed by this service.
type UsersAPI interface {
	GetUser(ctx context.Context, userID string) (*User, error)
	UpdatePreferences(ctx context.Context, userID, preferences string) (*User, error)
}
