package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postColumns = `id, title, content, categories, user_id, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (model.Post, error) {
	var post model.Post
	var categories []byte

	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &categories, &post.UserID,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return model.Post{}, err
	}

	if err := json.Unmarshal(categories, &post.Categories); err != nil {
		return model.Post{}, fmt.Errorf("failed to decode categories: %w", err)
	}

	return post, nil
}

func (r *PostRepository) collect(rows *sql.Rows) ([]model.Post, error) {
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	categories, err := json.Marshal(post.Categories)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to encode categories: %w", err)
	}

	query := `INSERT INTO posts (id, title, content, categories, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, categories, post.UserID,
		post.CreatedAt, post.UpdatedAt,
	))
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return r.collect(rows)
}

func (r *PostRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user id: %w", err)
	}

	return r.collect(rows)
}

func (r *PostRepository) ListByCategory(ctx context.Context, category string) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
			  WHERE categories @> to_jsonb(ARRAY[$1::text])
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by category: %w", err)
	}

	return r.collect(rows)
}

// Search performs a case-insensitive substring match over title, content and
// owner id, plus exact category membership, mirroring the multi-field query
// the search endpoint exposes. Pagination is plain limit/offset.
func (r *PostRepository) Search(ctx context.Context, params model.SearchPostsParams) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
			  WHERE title ILIKE '%' || $1 || '%'
			     OR content ILIKE '%' || $1 || '%'
			     OR user_id::text ILIKE '%' || $1 || '%'
			     OR categories @> to_jsonb(ARRAY[$1::text])
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	offset := (params.Page - 1) * params.Limit
	rows, err := r.db.QueryContext(ctx, query, params.Query, params.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return r.collect(rows)
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	categories, err := json.Marshal(post.Categories)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to encode categories: %w", err)
	}

	query := `UPDATE posts
			  SET title = $2, content = $3, categories = $4, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, categories,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}
