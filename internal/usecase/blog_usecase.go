package usecase

import (
	"context"
	"errors"
	"time"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/apperror"
	"go-blog-backend/pkg/logger"
	"go-blog-backend/pkg/slugify"

	"github.com/google/uuid"
)

const maxPageSize = 50

type blogUsecase struct {
	blogRepo     domain.BlogRepository
	defaultLimit int
}

func NewBlogUsecase(blogRepo domain.BlogRepository, defaultLimit int) domain.BlogUsecase {
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	return &blogUsecase{
		blogRepo:     blogRepo,
		defaultLimit: defaultLimit,
	}
}

func (u *blogUsecase) CreateBlog(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	if blog.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if blog.Content == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	if blog.Status == "" {
		blog.Status = domain.BlogStatusDraft
	}

	// Compute-if-absent: the slug is derived from the title exactly once,
	// here, and never touched again. Title edits must not move URLs.
	if blog.Slug == "" {
		blog.Slug = slugify.MakeUnique(blog.Title)
	}

	now := time.Now()
	blog.ID = uuid.NewString()
	blog.PublishedAt = now
	blog.UpdatedAt = now

	if err := u.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (u *blogUsecase) GetBlogBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.Blog, error) {
	blog, err := u.blogRepo.GetBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Blog not found")
	}
	if err != nil {
		return nil, err
	}

	// Drafts are invisible to readers
	if blog.Status != domain.BlogStatusPublished && !includeDrafts {
		return nil, apperror.NotFound("Blog not found")
	}

	// View counting is best-effort; a failed increment must not hide the post
	if err := u.blogRepo.IncrementViews(ctx, blog.ID); err != nil {
		logger.Log.Warn("Failed to increment blog views", "blogId", blog.ID, "error", err)
	} else {
		blog.ViewsCount++
	}

	return blog, nil
}

func (u *blogUsecase) ListBlogs(ctx context.Context, includeDrafts bool, limit, offset int) ([]domain.Blog, int64, error) {
	limit, offset = u.clampPage(limit, offset)
	return u.blogRepo.Fetch(ctx, !includeDrafts, limit, offset)
}

func (u *blogUsecase) ListBlogsByAuthor(ctx context.Context, authorID string, includeDrafts bool, limit, offset int) ([]domain.Blog, int64, error) {
	limit, offset = u.clampPage(limit, offset)
	return u.blogRepo.FetchByAuthor(ctx, authorID, !includeDrafts, limit, offset)
}

func (u *blogUsecase) UpdateBlog(ctx context.Context, blogID string, update *domain.BlogUpdate) (*domain.Blog, error) {
	blog, err := u.blogRepo.GetByID(ctx, blogID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Blog not found")
	}
	if err != nil {
		return nil, err
	}

	// The slug keeps its original value even when the title changes
	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Content != nil {
		blog.Content = *update.Content
	}
	if update.Banner != nil {
		blog.Banner = *update.Banner
	}
	if update.Status != nil {
		if *update.Status != domain.BlogStatusDraft && *update.Status != domain.BlogStatusPublished {
			return nil, apperror.BadRequest("Status must be draft or published")
		}
		blog.Status = *update.Status
	}
	blog.UpdatedAt = time.Now()

	if err := u.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (u *blogUsecase) DeleteBlog(ctx context.Context, blogID string) error {
	err := u.blogRepo.Delete(ctx, blogID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Blog not found")
	}
	return err
}

func (u *blogUsecase) clampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = u.defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
