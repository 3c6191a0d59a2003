package domain

import "context"

type Like struct {
	ID     string `json:"id"`
	BlogID string `json:"blogId"`
	UserID string `json:"userId"`
}

type LikeRepository interface {
	Create(ctx context.Context, like *Like) error
	Exists(ctx context.Context, blogID, userID string) (bool, error)
	Delete(ctx context.Context, blogID, userID string) error
}

type LikeUsecase interface {
	LikeBlog(ctx context.Context, userID, blogID string) (likesCount int64, err error)
	UnlikeBlog(ctx context.Context, userID, blogID string) (likesCount int64, err error)
}
