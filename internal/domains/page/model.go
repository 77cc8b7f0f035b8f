package page

import (
	"time"

	"github.com/google/uuid"
)

// Supported content languages.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// Languages lists the supported content languages.
var Languages = []string{LangEnglish, LangArabic}

// LanguageData maps language code -> field name -> value. Field sets vary
// per section, so this stays a map rather than a fixed struct.
type LanguageData map[string]map[string]string

// Page is one named content section of the marketing site.
type Page struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	SectionName string       `json:"section_name" db:"section_name"`
	Data        LanguageData `json:"data" db:"data"`
	IsActive    bool         `json:"is_active" db:"is_active"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// DataForLanguage returns the section's fields for one language, or an
// empty map when the language has no content yet.
func (p *Page) DataForLanguage(language string) map[string]string {
	if d, ok := p.Data[language]; ok && d != nil {
		return d
	}
	return map[string]string{}
}
