package post

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// requireBilingual rejects localized text missing en or ar content.
func requireBilingual(value interface{}) error {
	text, ok := value.(LocalizedText)
	if !ok || text == nil {
		return fmt.Errorf("must be an object keyed by language")
	}
	for _, lang := range []string{"en", "ar"} {
		if strings.TrimSpace(text[lang]) == "" {
			return fmt.Errorf("must contain %s text", lang)
		}
	}
	return nil
}

// CreatePostRequest carries a new bilingual article.
type CreatePostRequest struct {
	Title       LocalizedText `json:"title" binding:"required"`
	Description LocalizedText `json:"description" binding:"required"`
	Content     LocalizedText `json:"content" binding:"required"`
	Author      string        `json:"author" binding:"required"`
	CoverImage  string        `json:"cover_image,omitempty"`
	IsFeatured  bool          `json:"is_featured,omitempty"`
	Status      string        `json:"status,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.By(requireBilingual)),
		validation.Field(&r.Description, validation.Required.Error("description is required"), validation.By(requireBilingual)),
		validation.Field(&r.Content, validation.Required.Error("content is required"), validation.By(requireBilingual)),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.CoverImage, validation.Length(0, 2048)),
		validation.Field(&r.Status,
			validation.In(StatusDraft, StatusPublished, StatusArchived).Error("status must be draft, published or archived"),
		),
	)
}

// UpdatePostRequest carries a partial update; nil fields stay untouched.
type UpdatePostRequest struct {
	Title       LocalizedText `json:"title,omitempty"`
	Description LocalizedText `json:"description,omitempty"`
	Content     LocalizedText `json:"content,omitempty"`
	Author      *string       `json:"author,omitempty"`
	CoverImage  *string       `json:"cover_image,omitempty"`
	IsFeatured  *bool         `json:"is_featured,omitempty"`
	Status      *string       `json:"status,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.By(requireBilingual))),
		validation.Field(&r.Description, validation.When(r.Description != nil, validation.By(requireBilingual))),
		validation.Field(&r.Content, validation.When(r.Content != nil, validation.By(requireBilingual))),
		validation.Field(&r.Author, validation.When(r.Author != nil, validation.Length(1, 255))),
		validation.Field(&r.Status, validation.When(r.Status != nil,
			validation.In(StatusDraft, StatusPublished, StatusArchived).Error("status must be draft, published or archived"),
		)),
	)
}

// UpdateStatusRequest carries an explicit status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusDraft, StatusPublished, StatusArchived).Error("status must be draft, published or archived"),
		),
	)
}
