package v1

import (
	"net/http"

	"go-blog-backend/config"
	"go-blog-backend/internal/delivery/http/middleware"
	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	publicAuth.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig()))
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login",
			middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig()), handler.Login)
		publicAuth.POST("/refresh-token", handler.RefreshToken)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authPayload struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with email and password. Whitelisted emails become admin.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	user, tokens, err := h.authUC.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	response.Success(c, http.StatusCreated, "Account created successfully", authPayload{
		User:        user,
		AccessToken: tokens.AccessToken,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns an access token and sets the refresh cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	user, tokens, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	response.Success(c, http.StatusOK, "Logged in successfully", authPayload{
		User:        user,
		AccessToken: tokens.AccessToken,
	})
}

// RefreshToken godoc
// @Summary      Refresh Access Token
// @Description  Exchange a valid refresh token (cookie or body) for a new access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken := h.extractRefreshToken(c)
	if refreshToken == "" {
		c.Error(apperror.Unauthorized("Refresh token required"))
		return
	}

	accessToken, err := h.authUC.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", gin.H{"accessToken": accessToken})
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the refresh token and clear the cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken := h.extractRefreshToken(c)

	if err := h.authUC.Logout(c.Request.Context(), refreshToken); err != nil {
		c.Error(err)
		return
	}

	h.clearRefreshCookie(c)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) extractRefreshToken(c *gin.Context) string {
	if cookie, err := c.Cookie("refreshToken"); err == nil && cookie != "" {
		return cookie
	}
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	maxAge := int(h.config.RefreshTokenExpiry.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("refreshToken", token, maxAge, "/api/v1/auth", "", h.config.IsProduction(), true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("refreshToken", "", -1, "/api/v1/auth", "", h.config.IsProduction(), true)
}
