package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sanad-backend/internal/domains/post"
	sharedrepo "sanad-backend/internal/shared/repository"
)

const (
	defaultFeaturedLimit = 5

	// featuredStatLimit mirrors the statistics fan-out: featured posts are
	// fetched with a generous limit and counted client-side.
	featuredStatLimit = 100
)

// postService implements post.Service
type postService struct {
	repo post.Repository
}

// NewPostService creates a new post service instance
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) GetAllPosts(ctx context.Context, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	return s.repo.Paginate(ctx, page, perPage)
}

func (s *postService) GetPublishedPosts(ctx context.Context, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	return s.repo.Published(ctx, page, perPage)
}

func (s *postService) GetFeaturedPosts(ctx context.Context, limit int) ([]post.Post, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}
	return s.repo.Featured(ctx, limit)
}

func (s *postService) GetPostsByStatus(ctx context.Context, status string, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	if !post.ValidStatus(status) {
		return nil, post.ErrInvalidStatus
	}
	return s.repo.ByStatus(ctx, status, page, perPage)
}

func (s *postService) GetPostByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (s *postService) CreatePost(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = post.StatusDraft
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"content":     req.Content,
		"author":      strings.TrimSpace(req.Author),
		"is_featured": req.IsFeatured,
		"status":      status,
	}
	if req.CoverImage != "" {
		fields["cover_image"] = req.CoverImage
	}
	if status == post.StatusPublished {
		fields["published_at"] = time.Now()
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return created, nil
}

func (s *postService) UpdatePost(ctx context.Context, id uuid.UUID, req *post.UpdatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = req.Title
	}
	if req.Description != nil {
		fields["description"] = req.Description
	}
	if req.Content != nil {
		fields["content"] = req.Content
	}
	if req.Author != nil {
		fields["author"] = strings.TrimSpace(*req.Author)
	}
	if req.CoverImage != nil {
		fields["cover_image"] = *req.CoverImage
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return s.GetPostByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, fields, id)
	if err != nil {
		if errors.Is(err, sharedrepo.ErrNotFound) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	return updated, nil
}

func (s *postService) UpdatePostStatus(ctx context.Context, id uuid.UUID, status string) (*post.Post, error) {
	if !post.ValidStatus(status) {
		return nil, post.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sharedrepo.ErrNotFound) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post status: %w", err)
	}

	return updated, nil
}

func (s *postService) DeletePost(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *postService) SearchPosts(ctx context.Context, query, language string, page, perPage int) (*sharedrepo.Page[post.Post], error) {
	return s.repo.Search(ctx, query, language, page, perPage)
}

// GetPostStatistics issues one count query per status plus the featured
// listing; the result is recomputed on every call.
func (s *postService) GetPostStatistics(ctx context.Context) (post.Statistics, error) {
	stats := post.Statistics{}
	var total int64

	for _, status := range post.Statuses {
		count, err := s.repo.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("count %s posts: %w", status, err)
		}
		stats[status] = count
		total += count
	}
	stats["total"] = total

	featured, err := s.repo.Featured(ctx, featuredStatLimit)
	if err != nil {
		return nil, fmt.Errorf("count featured posts: %w", err)
	}
	stats["featured"] = int64(len(featured))

	return stats, nil
}
