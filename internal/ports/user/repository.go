package user

import (
	"context"

	"github.com/Mikielai/crudblog/internal/core/user"
)

// UserRepository is the outbound port for the local user table. Find methods
// return (nil, nil) when no row matches so callers can tell "absent" from a
// store failure.
type UserRepository interface {
	// Upsert inserts the row or, when the ID already exists, overwrites the
	// profile columns in the same statement.
	Upsert(ctx context.Context, u *user.User) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	// Delete succeeds when the row is already absent.
	Delete(ctx context.Context, id string) error
}

// Profile carries the provider-owned fields of a user, as delivered by a
// webhook event or a session.
type Profile struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	ProfileImage string
}

type UserDTO struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage"`
}
