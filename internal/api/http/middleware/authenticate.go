package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/api/http/httpctx"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
)

// UserResolver loads a user record by id.
type UserResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Authenticate validates bearer tokens and injects the resolved caller into
// the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	users          UserResolver
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, users UserResolver, contextManager *httpctx.Manager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		users:          users,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle parses the Authorization header, validates the token and resolves
// its subject to a stored user. The role set comes from the store on every
// request, not from token claims, so a role change takes effect immediately
// for tokens issued before it.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			m.abort(c, "authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.abort(c, "authorization header must be of form Bearer <token>")
			return
		}

		claims, err := m.tokenManager.Parse(parts[1])
		if err != nil {
			m.abort(c, err.Error())
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Info("Authenticate middleware: token subject not resolvable",
				"user_id", claims.UserID,
				"error", err.Error())
			m.abort(c, "token subject no longer exists")
			return
		}

		m.contextManager.SetUser(c, user)
		c.Next()
	}
}

func (m *Authenticate) abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
