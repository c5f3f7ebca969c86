package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context) ([]Post, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]Post, error)
	ListByCategory(ctx context.Context, category string) ([]Post, error)
	Search(ctx context.Context, params SearchPostsParams) ([]Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post represents a stored blog post. UserID references the owning user;
// the reference is validated at creation time only, deleting a user does
// not cascade to their posts.
type Post struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Categories []string  `json:"categories"`
	UserID     uuid.UUID `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	Title      string
	Content    string
	Categories []string
	UserID     uuid.UUID
}

// UpdatePostParams contains a partial update of a post. Nil fields are left
// unchanged.
type UpdatePostParams struct {
	Title      *string
	Content    *string
	Categories []string
}

// SearchPostsParams contains a paginated substring search over posts.
type SearchPostsParams struct {
	Query string
	Page  int
	Limit int
}
