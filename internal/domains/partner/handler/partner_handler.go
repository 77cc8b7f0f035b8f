package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sanad-backend/internal/domains/partner"
	"sanad-backend/internal/shared/response"
	sharedrepo "sanad-backend/internal/shared/repository"
)

// PartnerHandler handles HTTP requests for partnership inquiries
type PartnerHandler struct {
	service partner.Service
}

// NewPartnerHandler creates a new partner handler instance
func NewPartnerHandler(service partner.Service) *PartnerHandler {
	return &PartnerHandler{service: service}
}

// Index handles GET /partners?status=&per_page=
// A status filter returns the plain filtered list; otherwise the
// collection is paginated.
func (h *PartnerHandler) Index(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		partners, err := h.service.GetPartnersByStatus(c.Request.Context(), status)
		if err != nil {
			h.renderError(c, err, "list partners by status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": partners})
		return
	}

	pageNum, perPage := pageParams(c)
	result, err := h.service.GetAllPartners(c.Request.Context(), pageNum, perPage)
	if err != nil {
		log.Error().Err(err).Msg("list partners")
		response.InternalServerError(c, "could not load partners")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result.Items,
		"meta": response.Meta{
			Page:       result.Page,
			PerPage:    result.PerPage,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Show handles GET /partners/:id
func (h *PartnerHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "partner inquiry not found")
		return
	}

	p, err := h.service.GetPartnerByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get partner")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": p})
}

// Store handles POST /partners - the public inquiry form
func (h *PartnerHandler) Store(c *gin.Context) {
	var req partner.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	created, err := h.service.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err, "create partner")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Partnership inquiry submitted successfully",
		"data":    created,
	})
}

// UpdateStatus handles PUT /partners/:id/status
func (h *PartnerHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "partner inquiry not found")
		return
	}

	var req partner.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	updated, err := h.service.UpdatePartnerStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.renderError(c, err, "update partner status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Partner status updated successfully",
		"data":    updated,
	})
}

// Destroy handles DELETE /partners/:id
func (h *PartnerHandler) Destroy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "partner inquiry not found")
		return
	}

	if _, err := h.service.DeletePartner(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Msg("delete partner")
		response.InternalServerError(c, "could not delete partner")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner inquiry deleted successfully"})
}

// Statistics handles GET /partners/statistics
func (h *PartnerHandler) Statistics(c *gin.Context) {
	stats, err := h.service.GetPartnerStatistics(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("partner statistics")
		response.InternalServerError(c, "could not compute statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

func (h *PartnerHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, partner.ErrPartnerNotFound):
		response.NotFound(c, "partner inquiry not found")
	case errors.Is(err, partner.ErrInvalidStatus):
		response.ValidationFailed(c, err)
	case isValidationError(err):
		response.ValidationFailed(c, err)
	default:
		log.Error().Err(err).Msg(op)
		response.InternalServerError(c, "something went wrong")
	}
}

func isValidationError(err error) bool {
	var fieldErrs validation.Errors
	return errors.As(err, &fieldErrs)
}

func pageParams(c *gin.Context) (page, perPage int) {
	page = 1
	perPage = sharedrepo.DefaultPerPage

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if perPageStr := c.Query("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}
	return page, perPage
}
