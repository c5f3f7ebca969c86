package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/apierrors"
	"github.com/codigofacilito/blog-backend/internal/authz"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
	"github.com/codigofacilito/blog-backend/internal/validate"
)

// Defaults for the paginated search endpoint.
const (
	searchDefaultPage  = 1
	searchDefaultLimit = 10
	filterQueryMinLen  = 3
)

// Filter kinds accepted by the filter endpoint.
const (
	FilterByAuthor   = "author"
	FilterByCategory = "category"
)

// Post provides creation, lookup, search and ownership-guarded mutation of
// blog posts.
type Post struct {
	postStore model.PostStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, userStore model.UserStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		userStore: userStore,
		logger:    logger,
	}
}

// Create validates and stores a new post. The referenced owner must exist at
// creation time; there is no foreign key, so this lookup is the only check.
func (s *Post) Create(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	if err := validate.PostTitle(params.Title); err != nil {
		return model.Post{}, err
	}
	if err := validate.PostContent(params.Content); err != nil {
		return model.Post{}, err
	}
	if err := validate.PostCategories(params.Categories); err != nil {
		return model.Post{}, err
	}

	_, err := s.userStore.GetByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, apierrors.NewErrNotFound("author")
		}
		return model.Post{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	now := time.Now()
	post := model.Post{
		ID:         uuid.New(),
		Title:      params.Title,
		Content:    params.Content,
		Categories: params.Categories,
		UserID:     params.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	saved, err := s.postStore.Create(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", saved.ID,
		"user_id", saved.UserID)

	return saved, nil
}

// Get returns a single post by id.
func (s *Post) Get(ctx context.Context, id uuid.UUID) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, apierrors.NewErrNotFound("post")
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// List returns every post.
func (s *Post) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListByUser returns the posts owned by the given user.
func (s *Post) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	posts, err := s.postStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}

	return posts, nil
}

// Update applies a partial update to a post. Allowed for the post's owner or
// an admin.
func (s *Post) Update(ctx context.Context, caller model.User, id uuid.UUID, params model.UpdatePostParams) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, apierrors.NewErrNotFound("post")
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	if !authz.CanMutate(caller, post.UserID) {
		s.logger.Info("Post service: update denied",
			"caller_id", caller.ID,
			"post_id", id,
			"owner_id", post.UserID)
		return model.Post{}, apierrors.NewErrForbidden()
	}

	if params.Title != nil {
		if err := validate.PostTitle(*params.Title); err != nil {
			return model.Post{}, err
		}
		post.Title = *params.Title
	}
	if params.Content != nil {
		if err := validate.PostContent(*params.Content); err != nil {
			return model.Post{}, err
		}
		post.Content = *params.Content
	}
	if params.Categories != nil {
		if err := validate.PostCategories(params.Categories); err != nil {
			return model.Post{}, err
		}
		post.Categories = params.Categories
	}

	saved, err := s.postStore.Update(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("Post service: post updated",
		"post_id", saved.ID,
		"caller_id", caller.ID)

	return saved, nil
}

// Delete removes a post. Allowed for the post's owner or an admin.
func (s *Post) Delete(ctx context.Context, caller model.User, id uuid.UUID) error {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrNotFound("post")
		}
		return fmt.Errorf("failed to get post by id: %w", err)
	}

	if !authz.CanMutate(caller, post.UserID) {
		s.logger.Info("Post service: delete denied",
			"caller_id", caller.ID,
			"post_id", id,
			"owner_id", post.UserID)
		return apierrors.NewErrForbidden()
	}

	if err := s.postStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post service: post deleted",
		"post_id", id,
		"caller_id", caller.ID)

	return nil
}

// Search runs the paginated multi-field substring search. No matches is an
// empty result, not an error.
func (s *Post) Search(ctx context.Context, query string, page, limit int) ([]model.Post, error) {
	if page < 1 {
		page = searchDefaultPage
	}
	if limit < 1 {
		limit = searchDefaultLimit
	}

	posts, err := s.postStore.Search(ctx, model.SearchPostsParams{
		Query: query,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

// Filter returns posts by author username or by category.
func (s *Post) Filter(ctx context.Context, kind, query string) ([]model.Post, error) {
	if kind != FilterByAuthor && kind != FilterByCategory {
		return nil, apierrors.NewErrValidation("filter type must be %q or %q", FilterByAuthor, FilterByCategory)
	}
	if len(query) < filterQueryMinLen {
		return nil, apierrors.NewErrValidation("query must be at least %d characters", filterQueryMinLen)
	}

	if kind == FilterByCategory {
		posts, err := s.postStore.ListByCategory(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list posts by category: %w", err)
		}
		return posts, nil
	}

	author, err := s.userStore.GetByUsername(ctx, query)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apierrors.NewErrNotFound("author")
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	posts, err := s.postStore.ListByUserID(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}

	return posts, nil
}
