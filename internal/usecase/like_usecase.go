package usecase

import (
	"context"
	"errors"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"

	"github.com/google/uuid"
)

type likeUsecase struct {
	likeRepo domain.LikeRepository
	blogRepo domain.BlogRepository
}

func NewLikeUsecase(likeRepo domain.LikeRepository, blogRepo domain.BlogRepository) domain.LikeUsecase {
	return &likeUsecase{
		likeRepo: likeRepo,
		blogRepo: blogRepo,
	}
}

func (u *likeUsecase) LikeBlog(ctx context.Context, userID, blogID string) (int64, error) {
	blog, err := u.blogRepo.GetByID(ctx, blogID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Blog not found")
	}
	if err != nil {
		return 0, err
	}

	liked, err := u.likeRepo.Exists(ctx, blogID, userID)
	if err != nil {
		return 0, err
	}
	if liked {
		return 0, apperror.BadRequest("You have already liked this blog")
	}

	if err := u.likeRepo.Create(ctx, &domain.Like{
		ID:     uuid.NewString(),
		BlogID: blogID,
		UserID: userID,
	}); err != nil {
		return 0, err
	}

	if err := u.blogRepo.AdjustLikesCount(ctx, blogID, 1); err != nil {
		return 0, err
	}
	return blog.LikesCount + 1, nil
}

func (u *likeUsecase) UnlikeBlog(ctx context.Context, userID, blogID string) (int64, error) {
	blog, err := u.blogRepo.GetByID(ctx, blogID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Blog not found")
	}
	if err != nil {
		return 0, err
	}

	err = u.likeRepo.Delete(ctx, blogID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.BadRequest("You have not liked this blog")
	}
	if err != nil {
		return 0, err
	}

	if err := u.blogRepo.AdjustLikesCount(ctx, blogID, -1); err != nil {
		return 0, err
	}

	count := blog.LikesCount - 1
	if count < 0 {
		count = 0
	}
	return count, nil
}
