package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sanad-backend/internal/domains/page"
	"sanad-backend/internal/shared/response"
)

// PageHandler handles HTTP requests for page content
type PageHandler struct {
	service page.Service
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(service page.Service) *PageHandler {
	return &PageHandler{service: service}
}

// Index handles GET /pages - all active pages keyed by section
func (h *PageHandler) Index(c *gin.Context) {
	pages, err := h.service.GetAllActivePages(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list active pages")
		response.InternalServerError(c, "could not load pages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// Show handles GET /pages/:section?lang=en|ar
func (h *PageHandler) Show(c *gin.Context) {
	section := c.Param("section")
	language := c.DefaultQuery("lang", page.LangEnglish)

	data, err := h.service.GetPageContent(c.Request.Context(), section, language)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("get page content")
		response.InternalServerError(c, "could not load page content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"section":  section,
		"language": language,
		"data":     data,
	})
}

// ShowBothLanguages handles GET /pages/:section/both-languages
func (h *PageHandler) ShowBothLanguages(c *gin.Context) {
	section := c.Param("section")

	data, err := h.service.GetPageContentBothLanguages(c.Request.Context(), section)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("get page content")
		response.InternalServerError(c, "could not load page content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"section": section,
		"data":    data,
	})
}

// Update handles PUT /pages/:section - upserts one language's content
func (h *PageHandler) Update(c *gin.Context) {
	section := c.Param("section")

	var req page.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	data, err := h.service.UpdatePageContent(c.Request.Context(), section, req.Language, req.Data)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("update page content")
		response.InternalServerError(c, "could not update page content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Page content updated successfully",
		"section":  section,
		"language": req.Language,
		"data":     data,
	})
}
