package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/codigofacilito/blog-backend/internal/api/http/handler"
	"github.com/codigofacilito/blog-backend/internal/api/http/httpctx"
	"github.com/codigofacilito/blog-backend/internal/api/http/middleware"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	userService    handler.UserService
	postService    handler.PostService
	tokenManager   model.TokenManager
	userStore      model.UserStore
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	userService handler.UserService,
	postService handler.PostService,
	tokenManager model.TokenManager,
	userStore model.UserStore,
	contextManager *httpctx.Manager,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:    userService,
		postService:    postService,
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware. Mutating
// routes sit behind the authentication middleware; read and registration
// routes are public.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.userStore, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.Handle())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	postHandler := handler.NewPost(r.postService, r.contextManager, r.logger)
	adminHandler := handler.NewAdmin(r.userService, r.contextManager, r.logger)

	users := engine.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/:id", userHandler.Get)

		protected := users.Group("", authenticate.Handle())
		protected.GET("", userHandler.List)
		protected.PUT("/:id", userHandler.Update)
		protected.DELETE("/:id", userHandler.Delete)
	}

	posts := engine.Group("/posts")
	{
		posts.POST("", postHandler.Create)
		posts.GET("", postHandler.List)
		posts.GET("/search", postHandler.Search)
		posts.GET("/filter", postHandler.Filter)
		posts.GET("/user/:userId", postHandler.ListByUser)
		posts.GET("/:id", postHandler.Get)

		protected := posts.Group("", authenticate.Handle())
		protected.PUT("/:id", postHandler.Update)
		protected.DELETE("/:id", postHandler.Delete)
	}

	admin := engine.Group("/admin", authenticate.Handle())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.DELETE("/user/:id", adminHandler.RemoveUser)
	}

	return engine
}
