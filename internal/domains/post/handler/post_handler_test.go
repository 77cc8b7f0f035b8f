package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad-backend/internal/domains/post"
	sharedrepo "sanad-backend/internal/shared/repository"
)

// stubPostService records which operation served the request.
type stubPostService struct {
	post.Service

	lastOp     string
	lastQuery  string
	lastLang   string
	lastStatus string
	statusErr  error
	found      *post.Post
}

func emptyPage() *sharedrepo.Page[post.Post] {
	return &sharedrepo.Page[post.Post]{Items: []post.Post{}, Page: 1, PerPage: 15, TotalPages: 1}
}

func (s *stubPostService) GetAllPosts(context.Context, int, int) (*sharedrepo.Page[post.Post], error) {
	s.lastOp = "all"
	return emptyPage(), nil
}

func (s *stubPostService) GetPostsByStatus(_ context.Context, status string, _, _ int) (*sharedrepo.Page[post.Post], error) {
	s.lastOp = "byStatus"
	s.lastStatus = status
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return emptyPage(), nil
}

func (s *stubPostService) SearchPosts(_ context.Context, query, language string, _, _ int) (*sharedrepo.Page[post.Post], error) {
	s.lastOp = "search"
	s.lastQuery = query
	s.lastLang = language
	return emptyPage(), nil
}

func (s *stubPostService) GetPostByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	if s.found != nil && s.found.ID == id {
		return s.found, nil
	}
	return nil, post.ErrPostNotFound
}

func (s *stubPostService) UpdatePostStatus(_ context.Context, id uuid.UUID, status string) (*post.Post, error) {
	if !post.ValidStatus(status) {
		return nil, post.ErrInvalidStatus
	}
	if s.found == nil || s.found.ID != id {
		return nil, post.ErrPostNotFound
	}
	s.found.Status = status
	return s.found, nil
}

func setupPostRouter(svc post.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPostHandler(svc)
	r.GET("/posts", h.Index)
	r.GET("/posts/:id", h.Show)
	r.PUT("/posts/:id/status", h.UpdateStatus)
	return r
}

func TestIndexSearchTakesPrecedenceOverStatus(t *testing.T) {
	svc := &stubPostService{}
	r := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts?search=funding&status=draft&lang=ar", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "search", svc.lastOp)
	assert.Equal(t, "funding", svc.lastQuery)
	assert.Equal(t, "ar", svc.lastLang)
}

func TestIndexStatusFilter(t *testing.T) {
	svc := &stubPostService{}
	r := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts?status=archived", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "byStatus", svc.lastOp)
	assert.Equal(t, "archived", svc.lastStatus)
}

func TestIndexInvalidStatusIsUnprocessable(t *testing.T) {
	svc := &stubPostService{statusErr: post.ErrInvalidStatus}
	r := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts?status=live", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestIndexUnfilteredReturnsMeta(t *testing.T) {
	svc := &stubPostService{}
	r := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "all", svc.lastOp)

	var body struct {
		Data []post.Post     `json:"data"`
		Meta json.RawMessage `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Meta)
}

func TestShowUnparsableIDIsNotFound(t *testing.T) {
	r := setupPostRouter(&stubPostService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShowUnknownIDIsNotFound(t *testing.T) {
	r := setupPostRouter(&stubPostService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	id := uuid.New()
	svc := &stubPostService{found: &post.Post{ID: id, Status: post.StatusDraft}}
	r := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/posts/"+id.String()+"/status",
		strings.NewReader(`{"status":"live"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, post.StatusDraft, svc.found.Status)
}

func TestUpdateStatusTransitions(t *testing.T) {
	id := uuid.New()
	svc := &stubPostService{found: &post.Post{ID: id, Status: post.StatusDraft}}
	r := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/posts/"+id.String()+"/status",
		strings.NewReader(`{"status":"published"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, post.StatusPublished, svc.found.Status)
}
