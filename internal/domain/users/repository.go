package users

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail busca por email ya normalizado (lowercase).
	GetByEmail(ctx context.Context, email string) (User, error)

	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
