package page

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdatePageRequest carries one language's content for a section.
type UpdatePageRequest struct {
	Language string            `json:"language" binding:"required"`
	Data     map[string]string `json:"data" binding:"required"`
}

func (r UpdatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Language,
			validation.Required.Error("language is required"),
			validation.In(LangEnglish, LangArabic).Error("language must be en or ar"),
		),
		validation.Field(&r.Data,
			validation.Required.Error("data is required"),
		),
	)
}
