package postgres

import (
	"context"

	"go-blog-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type likeRepo struct {
	db *pgxpool.Pool
}

func NewLikeRepository(db *pgxpool.Pool) domain.LikeRepository {
	return &likeRepo{db: db}
}

func (r *likeRepo) Create(ctx context.Context, like *domain.Like) error {
	query := `INSERT INTO likes (id, blog_id, user_id) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, like.ID, like.BlogID, like.UserID)
	return err
}

func (r *likeRepo) Exists(ctx context.Context, blogID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE blog_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, blogID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *likeRepo) Delete(ctx context.Context, blogID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM likes WHERE blog_id = $1 AND user_id = $2`, blogID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
