package page

import (
	"context"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// Repository is the data-access contract for pages: the uniform CRUD
// operations plus section-keyed queries.
type Repository interface {
	sharedrepo.CRUD[Page]

	// FindBySection returns the page for the section, or nil when absent.
	FindBySection(ctx context.Context, section string) (*Page, error)

	// ActivePages returns every active page.
	ActivePages(ctx context.Context) ([]Page, error)

	// UpdateSectionData upserts one language's content for a section:
	// missing sections are created, existing sections get only the given
	// language replaced, other languages stay untouched.
	UpdateSectionData(ctx context.Context, section, language string, data map[string]string) (*Page, error)
}
