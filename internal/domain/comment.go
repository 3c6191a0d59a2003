package domain

import (
	"context"
	"time"
)

type Comment struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blogId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	FetchByBlog(ctx context.Context, blogID string) ([]Comment, error)
	Delete(ctx context.Context, id string) error
}

type CommentUsecase interface {
	CreateComment(ctx context.Context, userID, blogID, content string) (*Comment, error)
	ListComments(ctx context.Context, blogID string) ([]Comment, error)
	// DeleteComment removes a comment; only the comment author or an admin may
	DeleteComment(ctx context.Context, userID, role, commentID string) error
}
