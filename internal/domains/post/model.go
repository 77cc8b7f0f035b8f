package post

import (
	"time"

	"github.com/google/uuid"
)

// Post statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Statuses lists every valid post status.
var Statuses = []string{StatusDraft, StatusPublished, StatusArchived}

// ValidStatus reports whether s is in the closed status set.
func ValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// LocalizedText maps language code -> text. Posts are bilingual: en and ar
// are both required on creation.
type LocalizedText map[string]string

// ForLanguage returns the text for one language, or "" when absent.
func (t LocalizedText) ForLanguage(language string) string {
	return t[language]
}

// Post is a bilingual blog article.
type Post struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Title       LocalizedText `json:"title" db:"title"`
	Description LocalizedText `json:"description" db:"description"`
	Content     LocalizedText `json:"content" db:"content"`
	Author      string        `json:"author" db:"author"`
	CoverImage  *string       `json:"cover_image" db:"cover_image"`
	IsFeatured  bool          `json:"is_featured" db:"is_featured"`
	Status      string        `json:"status" db:"status"`
	PublishedAt *time.Time    `json:"published_at" db:"published_at"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// IsPublished reports whether the post is published.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}
