package partner

import (
	"context"

	"github.com/google/uuid"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// Repository persists partnership inquiries.
type Repository interface {
	sharedrepo.CRUD[Partner]

	// ByStatus lists inquiries in one workflow state, newest first.
	ByStatus(ctx context.Context, status string) ([]Partner, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Partner, error)
}
