package partner

import (
	"context"

	"github.com/google/uuid"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// Statistics is the per-status breakdown of the inquiry pipeline.
type Statistics map[string]int64

// Service wraps the inquiry repository with workflow validation and
// statistics aggregation.
type Service interface {
	GetAllPartners(ctx context.Context, page, perPage int) (*sharedrepo.Page[Partner], error)
	GetPartnersByStatus(ctx context.Context, status string) ([]Partner, error)
	GetPartnerByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	CreatePartner(ctx context.Context, req *CreatePartnerRequest) (*Partner, error)
	UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status string) (*Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) (int64, error)
	GetPartnerStatistics(ctx context.Context) (Statistics, error)
}
