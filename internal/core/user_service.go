package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userService struct {
	pool *pgxpool.Pool
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool) UserService {
	return &userService{pool: pool}
}

func (s *userService) GetByAuthUID(ctx context.Context, authUID string) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, auth_uid, email, name, role, created_at
		FROM users
		WHERE auth_uid = $1`,
		authUID,
	).Scan(&u.ID, &u.AuthUID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("user for auth uid %q not found: %w", authUID, err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, auth_uid, email, name, role, created_at
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.AuthUID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("user %q not found: %w", email, err)
	}
	return u, nil
}
