package v1

import (
	"net/http"

	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUC domain.LikeUsecase
}

func NewLikeHandler(protected *gin.RouterGroup, likeUC domain.LikeUsecase) {
	handler := &LikeHandler{likeUC: likeUC}

	protected.POST("/likes/blog/:blogId", handler.Like)
	protected.DELETE("/likes/blog/:blogId", handler.Unlike)
}

// Like godoc
// @Summary      Like a blog post
// @Description  Like a blog post once. A second like from the same user is rejected.
// @Tags         likes
// @Produce      json
// @Param        blogId  path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /likes/blog/{blogId} [post]
// @Security     BearerAuth
func (h *LikeHandler) Like(c *gin.Context) {
	count, err := h.likeUC.LikeBlog(c.Request.Context(),
		c.GetString(string(domain.KeyUserID)), c.Param("blogId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog liked successfully", gin.H{"likesCount": count})
}

// Unlike godoc
// @Summary      Remove a like from a blog post
// @Tags         likes
// @Produce      json
// @Param        blogId  path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /likes/blog/{blogId} [delete]
// @Security     BearerAuth
func (h *LikeHandler) Unlike(c *gin.Context) {
	count, err := h.likeUC.UnlikeBlog(c.Request.Context(),
		c.GetString(string(domain.KeyUserID)), c.Param("blogId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Like removed successfully", gin.H{"likesCount": count})
}
