package post

import (
	"context"

	"github.com/google/uuid"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// Statistics is the per-status breakdown of the posts collection. The
// counts are gathered with one query per status and are not a consistent
// snapshot under concurrent writes.
type Statistics map[string]int64

// Service wraps the post repository with workflow rules: publication
// timestamping, status validation and statistics aggregation.
type Service interface {
	GetAllPosts(ctx context.Context, page, perPage int) (*sharedrepo.Page[Post], error)
	GetPublishedPosts(ctx context.Context, page, perPage int) (*sharedrepo.Page[Post], error)
	GetFeaturedPosts(ctx context.Context, limit int) ([]Post, error)
	GetPostsByStatus(ctx context.Context, status string, page, perPage int) (*sharedrepo.Page[Post], error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*Post, error)
	CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*Post, error)
	UpdatePostStatus(ctx context.Context, id uuid.UUID, status string) (*Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) (int64, error)
	SearchPosts(ctx context.Context, query, language string, page, perPage int) (*sharedrepo.Page[Post], error)
	GetPostStatistics(ctx context.Context) (Statistics, error)
}
