package user

import (
	"context"

	sharedrepo "sanad-backend/internal/shared/repository"
)

// Repository persists staff accounts.
type Repository interface {
	sharedrepo.CRUD[User]

	// FindByEmail returns nil when no account matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
