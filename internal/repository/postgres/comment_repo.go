package postgres

import (
	"context"
	"errors"

	"go-blog-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) domain.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	query := `INSERT INTO comments (id, blog_id, user_id, content, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		comment.ID, comment.BlogID, comment.UserID, comment.Content, comment.CreatedAt,
	)
	return err
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `SELECT id, blog_id, user_id, content, created_at FROM comments WHERE id = $1`
	var comment domain.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.BlogID, &comment.UserID, &comment.Content, &comment.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) FetchByBlog(ctx context.Context, blogID string) ([]domain.Comment, error) {
	query := `SELECT id, blog_id, user_id, content, created_at FROM comments
              WHERE blog_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID, &comment.BlogID, &comment.UserID, &comment.Content, &comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
