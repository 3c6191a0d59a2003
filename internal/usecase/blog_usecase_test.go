package usecase_test

import (
	"context"
	"strings"
	"testing"

	"go-blog-backend/internal/domain"
	"go-blog-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateBlogSlug(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, 20)

	t.Run("Should derive slug from title on first save", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil).Once()

		created, err := uc.CreateBlog(context.Background(), &domain.Blog{
			Title:    "Into the Glade, Uninvited.",
			Content:  "body",
			AuthorID: "author1",
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.Slug, "into-the-glade-uninvited-"), created.Slug)
		assert.Equal(t, domain.BlogStatusDraft, created.Status)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Should keep a slug that is already set", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil).Once()

		created, err := uc.CreateBlog(context.Background(), &domain.Blog{
			Title:   "New Title",
			Content: "body",
			Slug:    "existing-slug",
		})
		assert.NoError(t, err)
		assert.Equal(t, "existing-slug", created.Slug)
	})

	t.Run("Should reject empty title", func(t *testing.T) {
		_, err := uc.CreateBlog(context.Background(), &domain.Blog{Content: "body"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})
}

func TestUpdateBlogKeepsSlug(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, 20)

	existing := &domain.Blog{
		ID:     "blog1",
		Title:  "Original Title",
		Slug:   "original-title-abc123",
		Status: domain.BlogStatusPublished,
	}
	mockRepo.On("GetByID", mock.Anything, "blog1").Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil).Run(func(args mock.Arguments) {
		b := args.Get(1).(*domain.Blog)
		assert.Equal(t, "original-title-abc123", b.Slug)
		assert.Equal(t, "A Completely Different Title", b.Title)
	})

	newTitle := "A Completely Different Title"
	updated, err := uc.UpdateBlog(context.Background(), "blog1", &domain.BlogUpdate{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "original-title-abc123", updated.Slug)
}

func TestUpdateBlogRejectsUnknownStatus(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, 20)

	mockRepo.On("GetByID", mock.Anything, "blog1").Return(&domain.Blog{ID: "blog1"}, nil)

	bad := "archived"
	_, err := uc.UpdateBlog(context.Background(), "blog1", &domain.BlogUpdate{Status: &bad})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "draft or published")
}

func TestGetBlogBySlugDraftVisibility(t *testing.T) {
	draft := &domain.Blog{ID: "blog1", Slug: "hidden-draft", Status: domain.BlogStatusDraft}

	t.Run("Readers get 404 for drafts", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, 20)
		mockRepo.On("GetBySlug", mock.Anything, "hidden-draft").Return(draft, nil)

		_, err := uc.GetBlogBySlug(context.Background(), "hidden-draft", false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Blog not found")
	})

	t.Run("Admins see drafts", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, 20)
		mockRepo.On("GetBySlug", mock.Anything, "hidden-draft").Return(draft, nil)
		mockRepo.On("IncrementViews", mock.Anything, "blog1").Return(nil)

		blog, err := uc.GetBlogBySlug(context.Background(), "hidden-draft", true)
		assert.NoError(t, err)
		assert.Equal(t, "blog1", blog.ID)
	})

	t.Run("Unknown slug is 404", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, 20)
		mockRepo.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := uc.GetBlogBySlug(context.Background(), "nope", false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Blog not found")
	})
}

func TestListBlogsClampsPagination(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, 20)

	t.Run("Zero limit falls back to default", func(t *testing.T) {
		mockRepo.On("Fetch", mock.Anything, true, 20, 0).Return([]domain.Blog{}, int64(0), nil).Once()
		_, _, err := uc.ListBlogs(context.Background(), false, 0, -5)
		assert.NoError(t, err)
	})

	t.Run("Oversized limit is capped", func(t *testing.T) {
		mockRepo.On("Fetch", mock.Anything, true, 50, 10).Return([]domain.Blog{}, int64(0), nil).Once()
		_, _, err := uc.ListBlogs(context.Background(), false, 500, 10)
		assert.NoError(t, err)
	})

	mockRepo.AssertExpectations(t)
}
