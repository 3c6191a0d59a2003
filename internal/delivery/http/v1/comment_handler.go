package v1

import (
	"net/http"

	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUC domain.CommentUsecase
}

func NewCommentHandler(public *gin.RouterGroup, protected *gin.RouterGroup, commentUC domain.CommentUsecase) {
	handler := &CommentHandler{commentUC: commentUC}

	// Anyone can read comments on a post
	public.GET("/comments/blog/:blogId", handler.ListByBlog)

	// Writing requires a logged in user
	protected.POST("/comments/blog/:blogId", handler.Create)
	protected.DELETE("/comments/:commentId", handler.Delete)
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// Create godoc
// @Summary      Comment on a blog post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        blogId   path      string                true  "Blog ID"
// @Param        comment  body      CreateCommentRequest  true  "Comment JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/blog/{blogId} [post]
// @Security     BearerAuth
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	comment, err := h.commentUC.CreateComment(c.Request.Context(),
		c.GetString(string(domain.KeyUserID)), c.Param("blogId"), req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment created successfully", comment)
}

// ListByBlog godoc
// @Summary      List comments on a blog post
// @Tags         comments
// @Produce      json
// @Param        blogId  path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/blog/{blogId} [get]
func (h *CommentHandler) ListByBlog(c *gin.Context) {
	comments, err := h.commentUC.ListComments(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comments retrieved", gin.H{"comments": comments})
}

// Delete godoc
// @Summary      Delete a comment
// @Description  Delete a comment. Allowed for the comment author or an admin.
// @Tags         comments
// @Produce      json
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/{commentId} [delete]
// @Security     BearerAuth
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.commentUC.DeleteComment(c.Request.Context(),
		c.GetString(string(domain.KeyUserID)),
		c.GetString(string(domain.KeyUserRole)),
		c.Param("commentId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comment deleted successfully", nil)
}
