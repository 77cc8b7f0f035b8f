package service

import (
	"context"
	"sort"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad-backend/internal/domains/partner"
	sharedrepo "sanad-backend/internal/shared/repository"
)

type fakePartnerRepo struct {
	partner.Repository
	partners map[uuid.UUID]*partner.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: make(map[uuid.UUID]*partner.Partner)}
}

func (f *fakePartnerRepo) Create(_ context.Context, fields map[string]interface{}) (*partner.Partner, error) {
	now := time.Now()
	p := &partner.Partner{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if v, ok := fields["full_name"].(string); ok {
		p.FullName = v
	}
	if v, ok := fields["company_email"].(string); ok {
		p.CompanyEmail = v
	}
	if v, ok := fields["organization"].(string); ok {
		p.Organization = v
	}
	if v, ok := fields["phone_number"].(string); ok {
		p.PhoneNumber = v
	}
	if v, ok := fields["message"].(string); ok {
		p.Message = v
	}
	if v, ok := fields["status"].(string); ok {
		p.Status = v
	}
	f.partners[p.ID] = p
	cp := *p
	return &cp, nil
}

func (f *fakePartnerRepo) Find(_ context.Context, id uuid.UUID, _ ...string) (*partner.Partner, error) {
	p, ok := f.partners[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePartnerRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.partners[id]; !ok {
		return 0, nil
	}
	delete(f.partners, id)
	return 1, nil
}

func (f *fakePartnerRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*partner.Partner, error) {
	p, ok := f.partners[id]
	if !ok {
		return nil, sharedrepo.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (f *fakePartnerRepo) ByStatus(_ context.Context, status string) ([]partner.Partner, error) {
	var out []partner.Partner
	for _, p := range f.partners {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePartnerRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, p := range f.partners {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func validInquiry() *partner.CreatePartnerRequest {
	return &partner.CreatePartnerRequest{
		FullName:     "Layla Haddad",
		CompanyEmail: "layla@acme.example",
		Organization: "Acme Ventures",
		PhoneNumber:  "+96650000000",
		Message:      "We would like to explore a partnership.",
	}
}

func TestCreatePartnerDefaultsToPending(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	created, err := svc.CreatePartner(context.Background(), validInquiry())
	require.NoError(t, err)
	assert.Equal(t, partner.StatusPending, created.Status)
}

func TestCreatePartnerNormalizesEmail(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	req := validInquiry()
	req.CompanyEmail = "  Layla@Acme.Example "
	created, err := svc.CreatePartner(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "layla@acme.example", created.CompanyEmail)
}

func TestCreatePartnerRejectsInvalidEmail(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	req := validInquiry()
	req.CompanyEmail = "not-an-email"

	_, err := svc.CreatePartner(context.Background(), req)
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "company_email")
}

func TestCreatePartnerRejectsOverlongMessage(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	req := validInquiry()
	for len(req.Message) <= 1000 {
		req.Message += req.Message
	}

	_, err := svc.CreatePartner(context.Background(), req)
	require.Error(t, err)

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "message")
}

func TestPartnerWorkflow(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())
	ctx := context.Background()

	created, err := svc.CreatePartner(ctx, validInquiry())
	require.NoError(t, err)
	require.Equal(t, partner.StatusPending, created.Status)

	contacted, err := svc.UpdatePartnerStatus(ctx, created.ID, partner.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, partner.StatusContacted, contacted.Status)

	approved, err := svc.UpdatePartnerStatus(ctx, created.ID, partner.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, partner.StatusApproved, approved.Status)

	fetched, err := svc.GetPartnerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, partner.StatusApproved, fetched.Status)

	pending, err := svc.GetPartnersByStatus(ctx, partner.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUpdatePartnerStatusInvalid(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	_, err := svc.UpdatePartnerStatus(context.Background(), uuid.New(), "ghosted")
	assert.ErrorIs(t, err, partner.ErrInvalidStatus)
}

func TestUpdatePartnerStatusUnknownID(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	_, err := svc.UpdatePartnerStatus(context.Background(), uuid.New(), partner.StatusRejected)
	assert.ErrorIs(t, err, partner.ErrPartnerNotFound)
}

func TestGetPartnersByStatusInvalid(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	_, err := svc.GetPartnersByStatus(context.Background(), "ghosted")
	assert.ErrorIs(t, err, partner.ErrInvalidStatus)
}

func TestDeletePartnerNonexistentIsNoError(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	affected, err := svc.DeletePartner(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestPartnerStatisticsSumToTotal(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := NewPartnerService(repo)
	ctx := context.Background()

	statuses := []string{
		partner.StatusPending, partner.StatusPending, partner.StatusPending,
		partner.StatusContacted,
		partner.StatusApproved, partner.StatusApproved,
		partner.StatusRejected,
	}
	for _, status := range statuses {
		created, err := svc.CreatePartner(ctx, validInquiry())
		require.NoError(t, err)
		if status != partner.StatusPending {
			_, err = svc.UpdatePartnerStatus(ctx, created.ID, status)
			require.NoError(t, err)
		}
	}

	stats, err := svc.GetPartnerStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats["pending"])
	assert.Equal(t, int64(1), stats["contacted"])
	assert.Equal(t, int64(2), stats["approved"])
	assert.Equal(t, int64(1), stats["rejected"])
	assert.Equal(t, int64(7), stats["total"])

	var sum int64
	for _, status := range partner.Statuses {
		sum += stats[status]
	}
	assert.Equal(t, stats["total"], sum)
}

func TestPartnerStatisticsEmpty(t *testing.T) {
	svc := NewPartnerService(newFakePartnerRepo())

	stats, err := svc.GetPartnerStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats["total"])
	for _, status := range partner.Statuses {
		assert.Equal(t, int64(0), stats[status])
	}
}
