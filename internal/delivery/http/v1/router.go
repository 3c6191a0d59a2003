package v1

import (
	"net/http"

	"go-blog-backend/config"
	"go-blog-backend/internal/delivery/http/middleware"
	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	BlogUC    domain.BlogUsecase
	CommentUC domain.CommentUsecase
	LikeUC    domain.LikeUsecase
	UserUC    domain.UserUsecase
	ContactUC domain.ContactUsecase
	Tokens    *auth.TokenManager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware())

	v1 := r.Group("/api/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes carry identity when a token is present so admins see drafts
	public := v1.Group("")
	public.Use(middleware.OptionalAuth(deps.Tokens, deps.AuthUC))

	NewContactHandler(public, deps.ContactUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	// Admin routes
	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC), middleware.AdminOnly())

	NewAuthHandler(v1, protected, deps.AuthUC, deps.Config)
	NewBlogHandler(public, admin, deps.BlogUC)
	NewCommentHandler(public, protected, deps.CommentUC)
	NewLikeHandler(protected, deps.LikeUC)
	NewUserHandler(protected, admin, deps.UserUC)

	return r
}
