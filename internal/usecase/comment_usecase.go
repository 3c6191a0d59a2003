package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/logger"

	"github.com/google/uuid"
)

type commentUsecase struct {
	commentRepo domain.CommentRepository
	blogRepo    domain.BlogRepository
}

func NewCommentUsecase(commentRepo domain.CommentRepository, blogRepo domain.BlogRepository) domain.CommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

func (u *commentUsecase) CreateComment(ctx context.Context, userID, blogID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	if len(content) > 1000 {
		return nil, apperror.BadRequest("Content must be less than 1000 characters")
	}

	blog, err := u.blogRepo.GetByID(ctx, blogID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Blog not found")
	}
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		BlogID:    blog.ID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Denormalized counter; a failed bump is logged, not surfaced
	if err := u.blogRepo.AdjustCommentsCount(ctx, blog.ID, 1); err != nil {
		logger.Log.Warn("Failed to increment comments count", "blogId", blog.ID, "error", err)
	}

	return comment, nil
}

func (u *commentUsecase) ListComments(ctx context.Context, blogID string) ([]domain.Comment, error) {
	if _, err := u.blogRepo.GetByID(ctx, blogID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, err
	}
	return u.commentRepo.FetchByBlog(ctx, blogID)
}

func (u *commentUsecase) DeleteComment(ctx context.Context, userID, role, commentID string) error {
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Comment not found")
	}
	if err != nil {
		return err
	}

	if comment.UserID != userID && role != domain.RoleAdmin {
		return apperror.Forbidden("You can only delete your own comments")
	}

	if err := u.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	if err := u.blogRepo.AdjustCommentsCount(ctx, comment.BlogID, -1); err != nil {
		logger.Log.Warn("Failed to decrement comments count", "blogId", comment.BlogID, "error", err)
	}

	return nil
}
