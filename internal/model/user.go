package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role names a permission level granted to a user.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user account. PasswordHash holds only the bcrypt
// digest of the password and is never serialized in API responses.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CreateUserParams contains parameters to register a user.
type CreateUserParams struct {
	Username string
	Email    string
	Password string
}

// UpdateUserParams contains a partial update of a user. Nil fields are left
// unchanged.
type UpdateUserParams struct {
	Username *string
	Email    *string
	Password *string
	Roles    []string
}
