package service

import (
	"context"
	"fmt"

	"sanad-backend/internal/domains/page"
)

// pageService implements page.Service
type pageService struct {
	repo page.Repository
}

// NewPageService creates a new page service instance
func NewPageService(repo page.Repository) page.Service {
	return &pageService{repo: repo}
}

func (s *pageService) GetPageContent(ctx context.Context, section, language string) (map[string]string, error) {
	p, err := s.repo.FindBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("find section %q: %w", section, err)
	}
	if p == nil {
		return map[string]string{}, nil
	}

	return p.DataForLanguage(language), nil
}

func (s *pageService) GetPageContentBothLanguages(ctx context.Context, section string) (map[string]map[string]string, error) {
	p, err := s.repo.FindBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("find section %q: %w", section, err)
	}

	both := make(map[string]map[string]string, len(page.Languages))
	for _, lang := range page.Languages {
		if p == nil {
			both[lang] = map[string]string{}
			continue
		}
		both[lang] = p.DataForLanguage(lang)
	}

	return both, nil
}

func (s *pageService) GetAllActivePages(ctx context.Context) (map[string]page.LanguageData, error) {
	pages, err := s.repo.ActivePages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active pages: %w", err)
	}

	result := make(map[string]page.LanguageData, len(pages))
	for _, p := range pages {
		result[p.SectionName] = p.Data
	}

	return result, nil
}

func (s *pageService) UpdatePageContent(ctx context.Context, section, language string, data map[string]string) (map[string]string, error) {
	p, err := s.repo.UpdateSectionData(ctx, section, language, data)
	if err != nil {
		return nil, fmt.Errorf("update section %q: %w", section, err)
	}

	return p.DataForLanguage(language), nil
}
