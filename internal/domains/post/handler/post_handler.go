package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sanad-backend/internal/domains/page"
	"sanad-backend/internal/domains/post"
	"sanad-backend/internal/shared/response"
	sharedrepo "sanad-backend/internal/shared/repository"
)

// PostHandler handles HTTP requests for blog posts
type PostHandler struct {
	service post.Service
}

// NewPostHandler creates a new post handler instance
func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Index handles GET /posts?status=&search=&lang=&per_page=
// search takes precedence over status.
func (h *PostHandler) Index(c *gin.Context) {
	pageNum, perPage := pageParams(c)

	if search := c.Query("search"); search != "" {
		language := c.DefaultQuery("lang", page.LangEnglish)
		result, err := h.service.SearchPosts(c.Request.Context(), search, language, pageNum, perPage)
		if err != nil {
			log.Error().Err(err).Str("query", search).Msg("search posts")
			response.InternalServerError(c, "could not search posts")
			return
		}
		paginated(c, result)
		return
	}

	if status := c.Query("status"); status != "" {
		result, err := h.service.GetPostsByStatus(c.Request.Context(), status, pageNum, perPage)
		if err != nil {
			h.renderError(c, err, "list posts by status")
			return
		}
		paginated(c, result)
		return
	}

	result, err := h.service.GetAllPosts(c.Request.Context(), pageNum, perPage)
	if err != nil {
		log.Error().Err(err).Msg("list posts")
		response.InternalServerError(c, "could not load posts")
		return
	}
	paginated(c, result)
}

// Published handles GET /posts/published
func (h *PostHandler) Published(c *gin.Context) {
	pageNum, perPage := pageParams(c)

	result, err := h.service.GetPublishedPosts(c.Request.Context(), pageNum, perPage)
	if err != nil {
		log.Error().Err(err).Msg("list published posts")
		response.InternalServerError(c, "could not load posts")
		return
	}
	paginated(c, result)
}

// Featured handles GET /posts/featured?limit=
func (h *PostHandler) Featured(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	posts, err := h.service.GetFeaturedPosts(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list featured posts")
		response.InternalServerError(c, "could not load posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": posts})
}

// Show handles GET /posts/:id
func (h *PostHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	p, err := h.service.GetPostByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": p})
}

// Store handles POST /posts
func (h *PostHandler) Store(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	created, err := h.service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err, "create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"data":    created,
	})
}

// Update handles PUT /posts/:id - partial field update
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	updated, err := h.service.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err, "update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"data":    updated,
	})
}

// UpdateStatus handles PUT /posts/:id/status
func (h *PostHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	var req post.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	updated, err := h.service.UpdatePostStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.renderError(c, err, "update post status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post status updated successfully",
		"data":    updated,
	})
}

// Destroy handles DELETE /posts/:id
func (h *PostHandler) Destroy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}

	if _, err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Msg("delete post")
		response.InternalServerError(c, "could not delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// Statistics handles GET /posts/statistics
func (h *PostHandler) Statistics(c *gin.Context) {
	stats, err := h.service.GetPostStatistics(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("post statistics")
		response.InternalServerError(c, "could not compute statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

func (h *PostHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, post.ErrInvalidStatus):
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

func paginated(c *gin.Context, result *sharedrepo.Page[post.Post]) {
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
