package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sanad-backend/internal/domains/user"
	sharedrepo "sanad-backend/internal/shared/repository"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"created_at",
	"updated_at",
}

type userRepository struct {
	*sharedrepo.Base[user.User]
}

func NewUserRepository(pool *pgxpool.Pool) user.Repository {
	return &userRepository{
		Base: sharedrepo.NewBase[user.User](pool, "users", userColumns),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	rows, err := r.Pool().Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[user.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("collect user: %w", err)
	}

	return &u, nil
}
