package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sanad-backend/internal/domains/partner"
	sharedrepo "sanad-backend/internal/shared/repository"
)

type partnerService struct {
	repo partner.Repository
}

func NewPartnerService(repo partner.Repository) partner.Service {
	return &partnerService{repo: repo}
}

func (s *partnerService) GetAllPartners(ctx context.Context, page, perPage int) (*sharedrepo.Page[partner.Partner], error) {
	return s.repo.Paginate(ctx, page, perPage)
}

func (s *partnerService) GetPartnersByStatus(ctx context.Context, status string) ([]partner.Partner, error) {
	if !partner.ValidStatus(status) {
		return nil, partner.ErrInvalidStatus
	}
	return s.repo.ByStatus(ctx, status)
}

func (s *partnerService) GetPartnerByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find partner: %w", err)
	}
	if p == nil {
		return nil, partner.ErrPartnerNotFound
	}
	return p, nil
}

func (s *partnerService) CreatePartner(ctx context.Context, req *partner.CreatePartnerRequest) (*partner.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"full_name":     strings.TrimSpace(req.FullName),
		"company_email": strings.ToLower(strings.TrimSpace(req.CompanyEmail)),
		"organization":  strings.TrimSpace(req.Organization),
		"phone_number":  strings.TrimSpace(req.PhoneNumber),
		"message":       strings.TrimSpace(req.Message),
		"status":        partner.StatusPending,
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}

	return created, nil
}

func (s *partnerService) UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status string) (*partner.Partner, error) {
	if !partner.ValidStatus(status) {
		return nil, partner.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sharedrepo.ErrNotFound) {
			return nil, partner.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("update partner status: %w", err)
	}

	return updated, nil
}

func (s *partnerService) DeletePartner(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *partnerService) GetPartnerStatistics(ctx context.Context) (partner.Statistics, error) {
	stats := partner.Statistics{}
	var total int64

	for _, status := range partner.Statuses {
		count, err := s.repo.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("count %s partners: %w", status, err)
		}
		stats[status] = count
		total += count
	}
	stats["total"] = total

	return stats, nil
}
