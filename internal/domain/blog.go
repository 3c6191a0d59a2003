package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Banner metadata comes from the image CDN; the server never stores pixels
type Banner struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type Blog struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Slug is assigned exactly once at first save and never regenerated on
	// edit, so external links stay stable across title changes.
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Banner        Banner    `json:"banner"`
	AuthorID      string    `json:"authorId"`
	ViewsCount    int64     `json:"viewsCount"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
	Status        string    `json:"status"`
	PublishedAt   time.Time `json:"publishedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	GetByID(ctx context.Context, id string) (*Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	Fetch(ctx context.Context, publishedOnly bool, limit, offset int) ([]Blog, int64, error)
	FetchByAuthor(ctx context.Context, authorID string, publishedOnly bool, limit, offset int) ([]Blog, int64, error)
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	AdjustLikesCount(ctx context.Context, id string, delta int) error
	AdjustCommentsCount(ctx context.Context, id string, delta int) error
}

type BlogUsecase interface {
	CreateBlog(ctx context.Context, blog *Blog) (*Blog, error)
	GetBlogBySlug(ctx context.Context, slug string, includeDrafts bool) (*Blog, error)
	ListBlogs(ctx context.Context, includeDrafts bool, limit, offset int) ([]Blog, int64, error)
	ListBlogsByAuthor(ctx context.Context, authorID string, includeDrafts bool, limit, offset int) ([]Blog, int64, error)
	UpdateBlog(ctx context.Context, blogID string, update *BlogUpdate) (*Blog, error)
	DeleteBlog(ctx context.Context, blogID string) error
}

// BlogUpdate carries the mutable fields of a blog; nil means "leave
// unchanged". Slug is deliberately absent.
type BlogUpdate struct {
	Title   *string
	Content *string
	Banner  *Banner
	Status  *string
}
