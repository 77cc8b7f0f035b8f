package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sanad-backend/internal/domains/user"
	sharedrepo "sanad-backend/internal/shared/repository"
	"sanad-backend/pkg/jwt"
)

const bcryptCost = 12

type userService struct {
	repo    user.Repository
	tokens  *jwt.Manager
	revoker user.TokenRevoker
}

func NewUserService(repo user.Repository, tokens *jwt.Manager, revoker user.TokenRevoker) user.Service {
	return &userService{repo: repo, tokens: tokens, revoker: revoker}
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.AuthResult{User: u, AccessToken: token}, nil
}

func (s *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	// The revocation mark only needs to outlive the longest-lived token.
	if err := s.revoker.RevokeTokens(ctx, userID.String(), s.tokens.Expiry()); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

func (s *userService) GetAllUsers(ctx context.Context, page, perPage int) (*sharedrepo.Page[user.User], error) {
	return s.repo.Paginate(ctx, page, perPage)
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *userService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, map[string]interface{}{
		"name":          strings.TrimSpace(req.Name),
		"email":         email,
		"password_hash": string(hash),
	})
	if err != nil {
		// The unique index still guards against a concurrent insert.
		if errors.Is(err, sharedrepo.ErrDuplicate) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, user.ErrEmailAlreadyExists
		}
		fields["email"] = email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if len(fields) == 0 {
		return s.GetUserByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, fields, id)
	if err != nil {
		switch {
		case errors.Is(err, sharedrepo.ErrNotFound):
			return nil, user.ErrUserNotFound
		case errors.Is(err, sharedrepo.ErrDuplicate):
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
