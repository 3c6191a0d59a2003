package usecase_test

import (
	"context"
	"testing"

	"go-blog-backend/internal/domain"
	"go-blog-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCommentBumpsCounter(t *testing.T) {
	mockComments := new(MockCommentRepo)
	mockBlogs := new(MockBlogRepo)
	uc := usecase.NewCommentUsecase(mockComments, mockBlogs)

	mockBlogs.On("GetByID", mock.Anything, "blog1").Return(&domain.Blog{ID: "blog1"}, nil)
	mockComments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	mockBlogs.On("AdjustCommentsCount", mock.Anything, "blog1", 1).Return(nil)

	comment, err := uc.CreateComment(context.Background(), "user1", "blog1", "  Great read!  Learned a lot. ")
	assert.NoError(t, err)
	assert.Equal(t, "Great read!  Learned a lot.", comment.Content)
	assert.Equal(t, "user1", comment.UserID)

	mockBlogs.AssertCalled(t, "AdjustCommentsCount", mock.Anything, "blog1", 1)
}

func TestCreateCommentOnMissingBlog(t *testing.T) {
	mockComments := new(MockCommentRepo)
	mockBlogs := new(MockBlogRepo)
	uc := usecase.NewCommentUsecase(mockComments, mockBlogs)

	mockBlogs.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	_, err := uc.CreateComment(context.Background(), "user1", "ghost", "hello there blog")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Blog not found")
}

func TestDeleteCommentOwnership(t *testing.T) {
	comment := &domain.Comment{ID: "c1", BlogID: "blog1", UserID: "author1"}

	t.Run("Author can delete", func(t *testing.T) {
		mockComments := new(MockCommentRepo)
		mockBlogs := new(MockBlogRepo)
		uc := usecase.NewCommentUsecase(mockComments, mockBlogs)

		mockComments.On("GetByID", mock.Anything, "c1").Return(comment, nil)
		mockComments.On("Delete", mock.Anything, "c1").Return(nil)
		mockBlogs.On("AdjustCommentsCount", mock.Anything, "blog1", -1).Return(nil)

		assert.NoError(t, uc.DeleteComment(context.Background(), "author1", domain.RoleUser, "c1"))
	})

	t.Run("Admin can delete anyone's comment", func(t *testing.T) {
		mockComments := new(MockCommentRepo)
		mockBlogs := new(MockBlogRepo)
		uc := usecase.NewCommentUsecase(mockComments, mockBlogs)

		mockComments.On("GetByID", mock.Anything, "c1").Return(comment, nil)
		mockComments.On("Delete", mock.Anything, "c1").Return(nil)
		mockBlogs.On("AdjustCommentsCount", mock.Anything, "blog1", -1).Return(nil)

		assert.NoError(t, uc.DeleteComment(context.Background(), "someone-else", domain.RoleAdmin, "c1"))
	})

	t.Run("Strangers are rejected", func(t *testing.T) {
		mockComments := new(MockCommentRepo)
		mockBlogs := new(MockBlogRepo)
		uc := usecase.NewCommentUsecase(mockComments, mockBlogs)

		mockComments.On("GetByID", mock.Anything, "c1").Return(comment, nil)

		err := uc.DeleteComment(context.Background(), "someone-else", domain.RoleUser, "c1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only delete your own")
		mockComments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLikeBlogOnce(t *testing.T) {
	t.Run("First like succeeds and bumps the count", func(t *testing.T) {
		mockLikes := new(MockLikeRepo)
		mockBlogs := new(MockBlogRepo)
		uc := usecase.NewLikeUsecase(mockLikes, mockBlogs)

		mockBlogs.On("GetByID", mock.Anything, "blog1").Return(&domain.Blog{ID: "blog1", LikesCount: 3}, nil)
		mockLikes.On("Exists", mock.Anything, "blog1", "user1").Return(false, nil)
		mockLikes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Like")).Return(nil)
		mockBlogs.On("AdjustLikesCount", mock.Anything, "blog1", 1).Return(nil)

		count, err := uc.LikeBlog(context.Background(), "user1", "blog1")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("Second like is rejected", func(t *testing.T) {
		mockLikes := new(MockLikeRepo)
		mockBlogs := new(MockBlogRepo)
		uc := usecase.NewLikeUsecase(mockLikes, mockBlogs)

		mockBlogs.On("GetByID", mock.Anything, "blog1").Return(&domain.Blog{ID: "blog1", LikesCount: 4}, nil)
		mockLikes.On("Exists", mock.Anything, "blog1", "user1").Return(true, nil)

		_, err := uc.LikeBlog(context.Background(), "user1", "blog1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already liked")
		mockLikes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unlike without a like is rejected", func(t *testing.T) {
		mockLikes := new(MockLikeRepo)
		mockBlogs := new(MockBlogRepo)
		uc := usecase.NewLikeUsecase(mockLikes, mockBlogs)

		mockBlogs.On("GetByID", mock.Anything, "blog1").Return(&domain.Blog{ID: "blog1"}, nil)
		mockLikes.On("Delete", mock.Anything, "blog1", "user1").Return(domain.ErrNotFound)

		_, err := uc.UnlikeBlog(context.Background(), "user1", "blog1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not liked")
	})
}
