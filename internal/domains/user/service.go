package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// TokenRevoker invalidates every access token a user holds. Tokens
// issued before the revocation instant stop being accepted.
type TokenRevoker interface {
	RevokeTokens(ctx context.Context, userID string, ttl time.Duration) error
}

// AuthResult is a successful login: the account plus a fresh access token.
type AuthResult struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}

// Service manages staff accounts and authentication.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	GetAllUsers(ctx context.Context, page, perPage int) (*sharedrepo.Page[User], error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (int64, error)
}
