package v1

import (
	"net/http"
	"strconv"

	"go-blog-backend/internal/delivery/http/response"
	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

func NewBlogHandler(public *gin.RouterGroup, admin *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	// PUBLIC routes - published posts only
	publicBlogs := public.Group("/blogs")
	{
		publicBlogs.GET("", handler.List)
		publicBlogs.GET("/user/:userId", handler.ListByAuthor)
		publicBlogs.GET("/:slug", handler.GetBySlug)
	}

	// ADMIN routes - authoring
	adminBlogs := admin.Group("/blogs")
	{
		adminBlogs.POST("", handler.Create)
		adminBlogs.PUT("/:blogId", handler.Update)
		adminBlogs.DELETE("/:blogId", handler.Delete)
	}
}

type BannerRequest struct {
	PublicID string `json:"publicId" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Width    int    `json:"width" binding:"required,gt=0"`
	Height   int    `json:"height" binding:"required,gt=0"`
}

type CreateBlogRequest struct {
	Title   string        `json:"title" binding:"required,max=180"`
	Content string        `json:"content" binding:"required"`
	Banner  BannerRequest `json:"banner" binding:"required"`
	Status  string        `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateBlogRequest struct {
	Title   *string        `json:"title" binding:"omitempty,max=180"`
	Content *string        `json:"content"`
	Banner  *BannerRequest `json:"banner"`
	Status  *string        `json:"status" binding:"omitempty,oneof=draft published"`
}

type blogListPayload struct {
	Blogs []domain.Blog `json:"blogs"`
	Total int64         `json:"total"`
}

// Create godoc
// @Summary      Create a blog post
// @Description  Create a new blog post. The slug is derived from the title once and never changes.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blog  body      CreateBlogRequest  true  "Blog JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /blogs [post]
// @Security     BearerAuth
func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	blog := &domain.Blog{
		Title:   req.Title,
		Content: req.Content,
		Banner: domain.Banner{
			PublicID: req.Banner.PublicID,
			URL:      req.Banner.URL,
			Width:    req.Banner.Width,
			Height:   req.Banner.Height,
		},
		AuthorID: c.GetString(string(domain.KeyUserID)),
		Status:   req.Status,
	}

	created, err := h.blogUC.CreateBlog(c.Request.Context(), blog)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Blog created successfully", created)
}

// List godoc
// @Summary      List blog posts
// @Description  List published blog posts with pagination. Admins also see drafts.
// @Tags         blogs
// @Produce      json
// @Param        limit   query     int  false  "Page size (default 20, max 50)"
// @Param        offset  query     int  false  "Offset"
// @Success      200  {object}  response.Response
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	limit, offset := paginationParams(c)
	includeDrafts := c.GetString(string(domain.KeyUserRole)) == domain.RoleAdmin

	blogs, total, err := h.blogUC.ListBlogs(c.Request.Context(), includeDrafts, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blogs retrieved", blogListPayload{Blogs: blogs, Total: total})
}

// ListByAuthor godoc
// @Summary      List blog posts by author
// @Tags         blogs
// @Produce      json
// @Param        userId  path      string  true  "Author user ID"
// @Param        limit   query     int     false "Page size"
// @Param        offset  query     int     false "Offset"
// @Success      200  {object}  response.Response
// @Router       /blogs/user/{userId} [get]
func (h *BlogHandler) ListByAuthor(c *gin.Context) {
	limit, offset := paginationParams(c)
	includeDrafts := c.GetString(string(domain.KeyUserRole)) == domain.RoleAdmin

	blogs, total, err := h.blogUC.ListBlogsByAuthor(c.Request.Context(), c.Param("userId"), includeDrafts, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blogs retrieved", blogListPayload{Blogs: blogs, Total: total})
}

// GetBySlug godoc
// @Summary      Get a blog post by slug
// @Tags         blogs
// @Produce      json
// @Param        slug  path      string  true  "Blog slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	includeDrafts := c.GetString(string(domain.KeyUserRole)) == domain.RoleAdmin

	blog, err := h.blogUC.GetBlogBySlug(c.Request.Context(), c.Param("slug"), includeDrafts)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog retrieved", blog)
}

// Update godoc
// @Summary      Update a blog post
// @Description  Update title, content, banner, or status. The slug never changes.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blogId  path      string             true  "Blog ID"
// @Param        blog    body      UpdateBlogRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{blogId} [put]
// @Security     BearerAuth
func (h *BlogHandler) Update(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	update := &domain.BlogUpdate{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	}
	if req.Banner != nil {
		update.Banner = &domain.Banner{
			PublicID: req.Banner.PublicID,
			URL:      req.Banner.URL,
			Width:    req.Banner.Width,
			Height:   req.Banner.Height,
		}
	}

	blog, err := h.blogUC.UpdateBlog(c.Request.Context(), c.Param("blogId"), update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog updated successfully", blog)
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Param        blogId  path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{blogId} [delete]
// @Security     BearerAuth
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogUC.DeleteBlog(c.Request.Context(), c.Param("blogId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog deleted successfully", nil)
}

// paginationParams reads limit/offset query values; the usecase clamps them
func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
