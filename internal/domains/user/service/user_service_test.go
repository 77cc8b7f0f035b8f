package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sanad-backend/internal/domains/user"
	sharedrepo "sanad-backend/internal/shared/repository"
	"sanad-backend/pkg/jwt"
)

type fakeUserRepo struct {
	user.Repository
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, fields map[string]interface{}) (*user.User, error) {
	now := time.Now()
	u := &user.User{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["password_hash"].(string); ok {
		u.PasswordHash = v
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, sharedrepo.ErrDuplicate
		}
	}
	f.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, fields map[string]interface{}, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sharedrepo.ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["password_hash"].(string); ok {
		u.PasswordHash = v
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Find(_ context.Context, id uuid.UUID, _ ...string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (f *fakeRevoker) RevokeTokens(_ context.Context, userID string, ttl time.Duration) error {
	f.revoked[userID] = ttl
	return nil
}

func newTestService() (user.Service, *fakeUserRepo, *fakeRevoker) {
	repo := newFakeUserRepo()
	revoker := newFakeRevoker()
	return NewUserService(repo, jwt.NewManager("test-secret", 60), revoker), repo, revoker
}

func registerRequest() *user.CreateUserRequest {
	return &user.CreateUserRequest{
		Name:     "Admin",
		Email:    "admin@sanad.example",
		Password: "correct horse battery",
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.CreateUser(context.Background(), registerRequest())
	require.NoError(t, err)

	stored := repo.users[created.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("correct horse battery")))
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	svc, _, _ := newTestService()

	req := registerRequest()
	req.Email = " Admin@Sanad.Example "
	created, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "admin@sanad.example", created.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, registerRequest())
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestCreateUserShortPassword(t *testing.T) {
	svc, _, _ := newTestService()

	req := registerRequest()
	req.Password = "short"
	_, err := svc.CreateUser(context.Background(), req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)

	result, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "admin@sanad.example",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.User.ID)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginIssuesValidToken(t *testing.T) {
	repo := newFakeUserRepo()
	tokens := jwt.NewManager("test-secret", 60)
	svc := NewUserService(repo, tokens, newFakeRevoker())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)

	result, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "admin@sanad.example",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
	assert.Equal(t, created.Email, claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &user.LoginRequest{
		Email:    "admin@sanad.example",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "nobody@sanad.example",
		Password: "whatever it is",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogoutRevokesTokens(t *testing.T) {
	svc, _, revoker := newTestService()

	id := uuid.New()
	require.NoError(t, svc.Logout(context.Background(), id))

	ttl, ok := revoker.revoked[id.String()]
	require.True(t, ok)
	assert.Equal(t, 60*time.Minute, ttl)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)
	oldHash := repo.users[created.ID].PasswordHash

	newPassword := "an even longer passphrase"
	_, err = svc.UpdateUser(ctx, created.ID, &user.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	newHash := repo.users[created.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(newPassword)))
}

func TestUpdateUserEmailConflict(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)

	other := registerRequest()
	other.Email = "editor@sanad.example"
	second, err := svc.CreateUser(ctx, other)
	require.NoError(t, err)

	taken := "admin@sanad.example"
	_, err = svc.UpdateUser(ctx, second.ID, &user.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestUpdateUserEmptyRequestReturnsCurrent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, registerRequest())
	require.NoError(t, err)

	got, err := svc.UpdateUser(ctx, created.ID, &user.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Email, got.Email)
}

func TestUpdateUserUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	name := "Ghost"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), &user.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
