package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sanad-backend/internal/domains/page"
	sharedrepo "sanad-backend/internal/shared/repository"
)

var pageColumns = []string{"id", "section_name", "data", "is_active", "created_at", "updated_at"}

// pageRepository implements page.Repository over pgxpool.
type pageRepository struct {
	*sharedrepo.Base[page.Page]
}

// NewPageRepository creates a page repository instance
func NewPageRepository(pool *pgxpool.Pool) page.Repository {
	return &pageRepository{
		Base: sharedrepo.NewBase[page.Page](pool, "pages", pageColumns),
	}
}

func (r *pageRepository) FindBySection(ctx context.Context, section string) (*page.Page, error) {
	return r.FindBy(ctx, "section_name", section)
}

func (r *pageRepository) ActivePages(ctx context.Context) ([]page.Page, error) {
	return r.FindAllBy(ctx, "is_active", true)
}

// UpdateSectionData merges one language's content into the section's jsonb
// data in a single statement. The top-level jsonb concatenation replaces
// exactly the given language key, so concurrent writers to different
// languages of the same section cannot lose each other's write.
func (r *pageRepository) UpdateSectionData(ctx context.Context, section, language string, data map[string]string) (*page.Page, error) {
	payload, err := json.Marshal(page.LanguageData{language: data})
	if err != nil {
		return nil, fmt.Errorf("encode page data: %w", err)
	}

	query := `
    INSERT INTO pages (section_name, data, is_active)
    VALUES ($1, $2, true)
    ON CONFLICT (section_name)
    DO UPDATE SET data = pages.data || excluded.data, updated_at = now()
    RETURNING id, section_name, data, is_active, created_at, updated_at
  `

	rows, err := r.Pool().Query(ctx, query, section, payload)
	if err != nil {
		return nil, fmt.Errorf("upsert page data: %w", err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[page.Page])
	if err != nil {
		return nil, fmt.Errorf("upsert page data: %w", err)
	}

	return &updated, nil
}
