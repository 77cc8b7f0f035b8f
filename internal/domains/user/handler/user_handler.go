package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sanad-backend/internal/domains/user"
	"sanad-backend/internal/shared/middleware"
	"sanad-backend/internal/shared/response"
	sharedrepo "sanad-backend/internal/shared/repository"
)

// UserHandler handles authentication and staff account management
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		h.renderError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
	})
}

// Logout handles POST /auth/logout - revokes every token the caller holds
func (h *UserHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("logout")
		response.InternalServerError(c, "could not log out")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /auth/user
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateMe handles PUT /auth/user
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

// Index handles GET /users
func (h *UserHandler) Index(c *gin.Context) {
	pageNum, perPage := pageParams(c)

	result, err := h.service.GetAllUsers(c.Request.Context(), pageNum, perPage)
	if err != nil {
		log.Error().Err(err).Msg("list users")
		response.InternalServerError(c, "could not load users")
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

// Show handles GET /users/:id
func (h *UserHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	u, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": u})
}

// Store handles POST /users
func (h *UserHandler) Store(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	created, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    created,
	})
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err, "update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"data":    updated,
	})
}

// Destroy handles DELETE /users/:id
func (h *UserHandler) Destroy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	if _, err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Msg("delete user")
		response.InternalServerError(c, "could not delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.ErrorResponse(c, http.StatusConflict, "EMAIL_TAKEN", "email already registered")
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
