package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/api/http/httpctx"
	"github.com/codigofacilito/blog-backend/internal/logger"
)

// Admin exposes the administration aliases for user management. These routes
// behave exactly like their /users counterparts; they exist as a separate
// surface for administrative tooling.
type Admin struct {
	userService    UserService
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(userService UserService, contextManager *httpctx.Manager, logger *logger.Logger) *Admin {
	return &Admin{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// ListUsers returns all users. Admin only.
func (h *Admin) ListUsers(c *gin.Context) {
	caller, ok := h.contextManager.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	users, err := h.userService.List(c.Request.Context(), caller)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// RemoveUser deletes any user account. Admin only.
func (h *Admin) RemoveUser(c *gin.Context) {
	caller, ok := h.contextManager.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), caller, id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
