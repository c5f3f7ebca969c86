package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/api/http/httpctx"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
)

// PostService defines the post operations the handler exposes.
type PostService interface {
	Create(ctx context.Context, params model.CreatePostParams) (model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error)
	Update(ctx context.Context, caller model.User, id uuid.UUID, params model.UpdatePostParams) (model.Post, error)
	Delete(ctx context.Context, caller model.User, id uuid.UUID) error
	Search(ctx context.Context, query string, page, limit int) ([]model.Post, error)
	Filter(ctx context.Context, kind, query string) ([]model.Post, error)
}

// Post handles HTTP endpoints for blog posts.
type Post struct {
	postService    PostService
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager *httpctx.Manager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createPostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
	UserID     string   `json:"user_id"`
}

type updatePostRequest struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Categories []string `json:"categories"`
}

// Create stores a new post. The owner id must reference an existing user.
func (h *Post) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a valid id"})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), model.CreatePostParams{
		Title:      req.Title,
		Content:    req.Content,
		Categories: req.Categories,
		UserID:     userID,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Get returns one post by id.
func (h *Post) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// List returns all posts.
func (h *Post) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListByUser returns all posts owned by the given user.
func (h *Post) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	posts, err := h.postService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Search runs the paginated substring search over posts.
func (h *Post) Search(c *gin.Context) {
	query := c.Query("query")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, err := h.postService.Search(c.Request.Context(), query, page, limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Filter returns posts by author username or category.
func (h *Post) Filter(c *gin.Context) {
	posts, err := h.postService.Filter(c.Request.Context(), c.Query("type"), c.Query("query"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Update applies a partial update to a post. Owner or admin.
func (h *Post) Update(c *gin.Context) {
	caller, ok := h.contextManager.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.Update(c.Request.Context(), caller, id, model.UpdatePostParams{
		Title:      req.Title,
		Content:    req.Content,
		Categories: req.Categories,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post. Owner or admin.
func (h *Post) Delete(c *gin.Context) {
	caller, ok := h.contextManager.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.postService.Delete(c.Request.Context(), caller, id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
