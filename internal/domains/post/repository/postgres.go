package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sanad-backend/internal/domains/post"
	sharedrepo "sanad-backend/internal/shared/repository"
)

var postColumns = []string{
	"id", "title", "description", "content", "author", "cover_image",
	"is_featured", "status", "published_at", "created_at", "updated_at",
}

const postSelect = `id, title, description, content, author, cover_image,
    is_featured, status, published_at, created_at, updated_at`

// postRepository implements post.Repository over pgxpool.
type postRepository struct {
	*sharedrepo.Base[post.Post]
}

// NewPostRepository creates a post repository instance
func NewPostRepository(pool *pgxpool.Pool) post.Repository {
	return &postRepository{
		Base: sharedrepo.NewBase[post.Post](pool, "posts", postColumns),
	}
}

func (r *postRepository) Published(ctx context.Context, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	where := "status = $1"
	return r.pageQuery(ctx, where, "published_at DESC", page, perPage, post.StatusPublished)
}

func (r *postRepository) Featured(ctx context.Context, limit int) ([]post.Post, error) {
	query := fmt.Sprintf(`
    SELECT %s FROM posts
    WHERE is_featured = true AND status = $1
    ORDER BY published_at DESC
    LIMIT $2
  `, postSelect)

	rows, err := r.Pool().Query(ctx, query, post.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("query featured posts: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[post.Post])
}

func (r *postRepository) ByStatus(ctx context.Context, status string, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	return r.pageQuery(ctx, "status = $1", "created_at DESC", page, perPage, status)
}

func (r *postRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.Pool().QueryRow(ctx, "SELECT count(*) FROM posts WHERE status = $1", status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts by status: %w", err)
	}
	return count, nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*post.Post, error) {
	// Publishing always restamps published_at, including a re-publish of
	// an already-published post.
	query := fmt.Sprintf(`
    UPDATE posts
    SET status = $2,
        published_at = CASE WHEN $2 = '%s' THEN now() ELSE published_at END,
        updated_at = now()
    WHERE id = $1
    RETURNING %s
  `, post.StatusPublished, postSelect)

	rows, err := r.Pool().Query(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[post.Post])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sharedrepo.ErrNotFound
		}
		return nil, fmt.Errorf("update post status: %w", err)
	}

	return &updated, nil
}

func (r *postRepository) Search(ctx context.Context, query, language string, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	where := "(title->>$1 ILIKE $2 OR content->>$1 ILIKE $2) AND status = $3"
	pattern := "%" + query + "%"
	return r.pageQuery(ctx, where, "published_at DESC", page, perPage, language, pattern, post.StatusPublished)
}

// pageQuery runs the filtered count plus the windowed select that every
// paginated post listing shares.
func (r *postRepository) pageQuery(ctx context.Context, where, orderBy string, page, perPage int, args ...interface{}) (*sharedrepo.Page[post.Post], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = sharedrepo.DefaultPerPage
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT count(*) FROM posts WHERE %s", where)
	if err := r.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(
		"SELECT %s FROM posts WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		postSelect, where, orderBy, n+1, n+2,
	)
	rows, err := r.Pool().Query(ctx, query, append(args, perPage, (page-1)*perPage)...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[post.Post])
	if err != nil {
		return nil, err
	}

	return &sharedrepo.Page[post.Post]{
		Items:      items,
		Total:      total,
		TotalPages: int((total + int64(perPage) - 1) / int64(perPage)),
		Page:       page,
		PerPage:    perPage,
	}, nil
}
