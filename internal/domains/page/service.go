package page

import "context"

// Service exposes language-aware projections over the page repository.
type Service interface {
	// GetPageContent returns only the requested language's fields; an
	// unknown section or language yields an empty map.
	GetPageContent(ctx context.Context, section, language string) (map[string]string, error)

	// GetPageContentBothLanguages returns en and ar content for a
	// section, each possibly empty.
	GetPageContentBothLanguages(ctx context.Context, section string) (map[string]map[string]string, error)

	// GetAllActivePages maps section name to the full per-language data
	// of every active page.
	GetAllActivePages(ctx context.Context) (map[string]LanguageData, error)

	// UpdatePageContent upserts one language's content and returns the
	// stored fields for that language.
	UpdatePageContent(ctx context.Context, section, language string, data map[string]string) (map[string]string, error)
}
