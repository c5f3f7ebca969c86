// Package httpctx stores and retrieves the authenticated caller on a
// request context.
package httpctx

import (
	"github.com/gin-gonic/gin"

	"github.com/codigofacilito/blog-backend/internal/model"
)

// userKey is the context key under which the resolved caller is stored.
const userKey = "current_user"

// Manager sets and retrieves the authenticated user on a gin context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUser attaches the resolved caller to the request context.
func (m *Manager) SetUser(c *gin.Context, user model.User) {
	c.Set(userKey, user)
}

// GetUser retrieves the resolved caller from the request context. The
// boolean is false when the request did not pass the authentication
// middleware.
func (m *Manager) GetUser(c *gin.Context) (model.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}

	user, ok := value.(model.User)
	if !ok {
		return model.User{}, false
	}

	return user, true
}
