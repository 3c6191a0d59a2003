package postgres

import (
	"context"
	"errors"

	"go-blog-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type blogRepo struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) domain.BlogRepository {
	return &blogRepo{db: db}
}

const blogColumns = `id, title, slug, content, banner_public_id, banner_url, banner_width, banner_height,
       author_id, views_count, likes_count, comments_count, status, published_at, updated_at`

func (r *blogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	query := `INSERT INTO blogs (id, title, slug, content, banner_public_id, banner_url, banner_width, banner_height,
              author_id, views_count, likes_count, comments_count, status, published_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Content,
		blog.Banner.PublicID, blog.Banner.URL, blog.Banner.Width, blog.Banner.Height,
		blog.AuthorID, blog.ViewsCount, blog.LikesCount, blog.CommentsCount,
		blog.Status, blog.PublishedAt, blog.UpdatedAt,
	)
	return err
}

func (r *blogRepo) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	return r.getOne(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return r.getOne(ctx, `SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug)
}

func (r *blogRepo) getOne(ctx context.Context, query string, arg any) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&blog.ID, &blog.Title, &blog.Slug, &blog.Content,
		&blog.Banner.PublicID, &blog.Banner.URL, &blog.Banner.Width, &blog.Banner.Height,
		&blog.AuthorID, &blog.ViewsCount, &blog.LikesCount, &blog.CommentsCount,
		&blog.Status, &blog.PublishedAt, &blog.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepo) Fetch(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Blog, int64, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
              WHERE ($1 = false OR status = 'published')
              ORDER BY published_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	blogs, err := scanBlogs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM blogs WHERE ($1 = false OR status = 'published')`
	if err := r.db.QueryRow(ctx, countQuery, publishedOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *blogRepo) FetchByAuthor(ctx context.Context, authorID string, publishedOnly bool, limit, offset int) ([]domain.Blog, int64, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
              WHERE author_id = $1 AND ($2 = false OR status = 'published')
              ORDER BY published_at DESC LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, authorID, publishedOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	blogs, err := scanBlogs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM blogs WHERE author_id = $1 AND ($2 = false OR status = 'published')`
	if err := r.db.QueryRow(ctx, countQuery, authorID, publishedOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func scanBlogs(rows pgx.Rows) ([]domain.Blog, error) {
	var blogs []domain.Blog
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(
			&blog.ID, &blog.Title, &blog.Slug, &blog.Content,
			&blog.Banner.PublicID, &blog.Banner.URL, &blog.Banner.Width, &blog.Banner.Height,
			&blog.AuthorID, &blog.ViewsCount, &blog.LikesCount, &blog.CommentsCount,
			&blog.Status, &blog.PublishedAt, &blog.UpdatedAt,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

// Update writes the mutable columns. Slug is intentionally not part of the
// statement: it is immutable after first save.
func (r *blogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	query := `UPDATE blogs SET title = $2, content = $3, banner_public_id = $4, banner_url = $5,
              banner_width = $6, banner_height = $7, status = $8, updated_at = $9
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		blog.ID, blog.Title, blog.Content,
		blog.Banner.PublicID, blog.Banner.URL, blog.Banner.Width, blog.Banner.Height,
		blog.Status, blog.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE blogs SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

func (r *blogRepo) AdjustLikesCount(ctx context.Context, id string, delta int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE blogs SET likes_count = GREATEST(likes_count + $2, 0) WHERE id = $1`, id, delta)
	return err
}

func (r *blogRepo) AdjustCommentsCount(ctx context.Context, id string, delta int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE blogs SET comments_count = GREATEST(comments_count + $2, 0) WHERE id = $1`, id, delta)
	return err
}
