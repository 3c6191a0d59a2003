package v1

import (
	"net/http"

	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	// Self-service profile routes
	users := protected.Group("/users")
	{
		users.GET("/current", handler.GetCurrent)
		users.PUT("/current", handler.UpdateCurrent)
		users.DELETE("/current", handler.DeleteCurrent)
	}

	// Admin user management
	adminUsers := admin.Group("/users")
	{
		adminUsers.GET("", handler.List)
		adminUsers.GET("/:userId", handler.GetByID)
		adminUsers.DELETE("/:userId", handler.Delete)
	}
}

type SocialLinksRequest struct {
	Website   *string `json:"website" binding:"omitempty,url"`
	Facebook  *string `json:"facebook" binding:"omitempty,url"`
	Instagram *string `json:"instagram" binding:"omitempty,url"`
	LinkedIn  *string `json:"linkedin" binding:"omitempty,url"`
	X         *string `json:"x" binding:"omitempty,url"`
	YouTube   *string `json:"youtube" binding:"omitempty,url"`
}

type UpdateUserRequest struct {
	Username    *string             `json:"username" binding:"omitempty,min=3,max=20"`
	Email       *string             `json:"email" binding:"omitempty,email"`
	Password    *string             `json:"password" binding:"omitempty,min=8"`
	FirstName   *string             `json:"firstName" binding:"omitempty,max=20"`
	LastName    *string             `json:"lastName" binding:"omitempty,max=20"`
	SocialLinks *SocialLinksRequest `json:"socialLinks"`
}

type userListPayload struct {
	Users []domain.User `json:"users"`
	Total int64         `json:"total"`
}

// GetCurrent godoc
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/current [get]
// @Security     BearerAuth
func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, err := h.userUC.GetCurrentUser(c.Request.Context(), c.GetString(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}

// UpdateCurrent godoc
// @Summary      Update current user
// @Description  Update the authenticated user's profile. Omitted fields are left unchanged.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      UpdateUserRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /users/current [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateCurrent(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	update := &domain.UserUpdate{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.SocialLinks != nil {
		update.SocialLinks = &domain.SocialLinks{
			Website:   req.SocialLinks.Website,
			Facebook:  req.SocialLinks.Facebook,
			Instagram: req.SocialLinks.Instagram,
			LinkedIn:  req.SocialLinks.LinkedIn,
			X:         req.SocialLinks.X,
			YouTube:   req.SocialLinks.YouTube,
		}
	}

	user, err := h.userUC.UpdateCurrentUser(c.Request.Context(), c.GetString(string(domain.KeyUserID)), update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", user)
}

// DeleteCurrent godoc
// @Summary      Delete current user
// @Description  Delete the authenticated user's account and revoke their sessions.
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/current [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteCurrent(c *gin.Context) {
	if err := h.userUC.DeleteCurrentUser(c.Request.Context(), c.GetString(string(domain.KeyUserID))); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted successfully", nil)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Offset"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	limit, offset := paginationParams(c)

	users, total, err := h.userUC.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", userListPayload{Users: users, Total: total})
}

// GetByID godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{userId} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUC.GetCurrentUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{userId} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
