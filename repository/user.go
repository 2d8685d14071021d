package repository

import (
	"context"

	"github.com/mentortrack/backend/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmailAndRole matches the login lookup: email is compared
	// exactly as stored.
	GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
