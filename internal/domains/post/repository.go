package post

import (
	"context"

	"github.com/google/uuid"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// Repository is the data-access contract for posts: the uniform CRUD
// operations plus status and search queries.
type Repository interface {
	sharedrepo.CRUD[Post]

	// Published returns published posts ordered by published_at descending.
	Published(ctx context.Context, page, perPage int) (*sharedrepo.Page[Post], error)

	// Featured returns featured published posts, newest publication first.
	Featured(ctx context.Context, limit int) ([]Post, error)

	// ByStatus returns posts with the given status, newest first.
	ByStatus(ctx context.Context, status string, page, perPage int) (*sharedrepo.Page[Post], error)

	// CountByStatus counts posts with the given status.
	CountByStatus(ctx context.Context, status string) (int64, error)

	// UpdateStatus transitions the post's status. Whenever the new status
	// is published the publication timestamp is refreshed to now, even on
	// a re-publish.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Post, error)

	// Search matches the query as a case-insensitive substring of the
	// title or content for one language, over published posts only,
	// ordered by published_at descending.
	Search(ctx context.Context, query, language string, page, perPage int) (*sharedrepo.Page[Post], error)
}
