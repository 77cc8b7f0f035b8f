package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad-backend/internal/domains/page"
)

// fakePageRepo mimics the jsonb merge semantics of the real repository:
// upserting a language replaces only that language's sub-map.
type fakePageRepo struct {
	page.Repository
	pages map[string]*page.Page
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[string]*page.Page)}
}

func (f *fakePageRepo) FindBySection(_ context.Context, section string) (*page.Page, error) {
	return f.pages[section], nil
}

func (f *fakePageRepo) ActivePages(_ context.Context) ([]page.Page, error) {
	var active []page.Page
	for _, p := range f.pages {
		if p.IsActive {
			active = append(active, *p)
		}
	}
	return active, nil
}

func (f *fakePageRepo) UpdateSectionData(_ context.Context, section, language string, data map[string]string) (*page.Page, error) {
	p, ok := f.pages[section]
	if !ok {
		p = &page.Page{
			ID:          uuid.New(),
			SectionName: section,
			Data:        page.LanguageData{},
			IsActive:    true,
			CreatedAt:   time.Now(),
		}
		f.pages[section] = p
	}
	p.Data[language] = data
	p.UpdatedAt = time.Now()
	return p, nil
}

func TestUpdateThenGetReturnsExactData(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	ctx := context.Background()

	want := map[string]string{"title": "Hero Title", "description": "Hero description"}

	_, err := svc.UpdatePageContent(ctx, "hero", "en", want)
	require.NoError(t, err)

	got, err := svc.GetPageContent(ctx, "hero", "en")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateOneLanguageLeavesOtherUntouched(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	ctx := context.Background()

	enData := map[string]string{"title": "Welcome"}
	arData := map[string]string{"title": "مرحباً"}

	_, err := svc.UpdatePageContent(ctx, "hero", "en", enData)
	require.NoError(t, err)
	_, err = svc.UpdatePageContent(ctx, "hero", "ar", arData)
	require.NoError(t, err)

	// Overwrite English; Arabic must keep its prior value.
	_, err = svc.UpdatePageContent(ctx, "hero", "en", map[string]string{"title": "Changed"})
	require.NoError(t, err)

	ar, err := svc.GetPageContent(ctx, "hero", "ar")
	require.NoError(t, err)
	assert.Equal(t, arData, ar)
}

func TestGetPageContentUnknownSection(t *testing.T) {
	svc := NewPageService(newFakePageRepo())

	got, err := svc.GetPageContent(context.Background(), "missing", "en")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGetPageContentUnknownLanguage(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	ctx := context.Background()

	_, err := svc.UpdatePageContent(ctx, "hero", "en", map[string]string{"title": "Welcome"})
	require.NoError(t, err)

	got, err := svc.GetPageContent(ctx, "hero", "fr")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBothLanguagesWithOnlyEnglish(t *testing.T) {
	svc := NewPageService(newFakePageRepo())
	ctx := context.Background()

	enData := map[string]string{"title": "Welcome"}
	_, err := svc.UpdatePageContent(ctx, "hero", "en", enData)
	require.NoError(t, err)

	both, err := svc.GetPageContentBothLanguages(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, enData, both["en"])
	assert.Empty(t, both["ar"])
	assert.NotNil(t, both["ar"])
}

func TestBothLanguagesUnknownSection(t *testing.T) {
	svc := NewPageService(newFakePageRepo())

	both, err := svc.GetPageContentBothLanguages(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{"en": {}, "ar": {}}, both)
}

func TestGetAllActivePages(t *testing.T) {
	repo := newFakePageRepo()
	svc := NewPageService(repo)
	ctx := context.Background()

	_, err := svc.UpdatePageContent(ctx, "hero", "en", map[string]string{"title": "Welcome"})
	require.NoError(t, err)
	_, err = svc.UpdatePageContent(ctx, "how_we_work", "ar", map[string]string{"title": "كيف نعمل"})
	require.NoError(t, err)

	pages, err := svc.GetAllActivePages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages, "hero")
	assert.Contains(t, pages, "how_we_work")
	assert.Equal(t, "Welcome", pages["hero"]["en"]["title"])
}
