package middleware

import (
	"strings"

	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the access token and loads the user so every
// request sees a fresh role instead of a possibly stale token claim.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("accessToken")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, 401, apperror.CodeAuthenticationError,
				"Authorization header or accessToken cookie required", nil)
			c.Abort()
			return
		}

		userID, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			response.Error(c, 401, apperror.CodeAuthenticationError, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, 401, apperror.CodeAuthenticationError, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// OptionalAuth populates the identity keys when a valid token is present but
// never rejects the request. Public listings use it so an authenticated admin
// also sees drafts.
func OptionalAuth(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Next()
	}
}

// AdminOnly rejects requests whose authenticated role is not admin.
// Must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != domain.RoleAdmin {
			response.Error(c, 403, apperror.CodeAuthorizationError, "Admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
