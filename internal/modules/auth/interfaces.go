package auth

import (
	"context"

	"studiorent/internal/domain"
)

// UserRepository defines the store operations the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, email, role string) (string, error)
}
