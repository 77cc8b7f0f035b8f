package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sanad-backend/internal/domains/partner"
	sharedrepo "sanad-backend/internal/shared/repository"
)

var partnerColumns = []string{
	"id",
	"full_name",
	"company_email",
	"organization",
	"phone_number",
	"message",
	"status",
	"created_at",
	"updated_at",
}

type partnerRepository struct {
	*sharedrepo.Base[partner.Partner]
}

func NewPartnerRepository(pool *pgxpool.Pool) partner.Repository {
	return &partnerRepository{
		Base: sharedrepo.NewBase[partner.Partner](pool, "partners", partnerColumns),
	}
}

func (r *partnerRepository) ByStatus(ctx context.Context, status string) ([]partner.Partner, error) {
	query := `
		SELECT id, full_name, company_email, organization, phone_number,
		       message, status, created_at, updated_at
		FROM partners
		WHERE status = $1
		ORDER BY created_at DESC`

	rows, err := r.Pool().Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("query partners by status: %w", err)
	}

	partners, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[partner.Partner])
	if err != nil {
		return nil, fmt.Errorf("collect partners: %w", err)
	}

	return partners, nil
}

func (r *partnerRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM partners WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count partners by status: %w", err)
	}
	return count, nil
}

func (r *partnerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*partner.Partner, error) {
	query := `
		UPDATE partners
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, full_name, company_email, organization, phone_number,
		          message, status, created_at, updated_at`

	rows, err := r.Pool().Query(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update partner status: %w", err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[partner.Partner])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sharedrepo.ErrNotFound
		}
		return nil, fmt.Errorf("collect updated partner: %w", err)
	}

	return &updated, nil
}
