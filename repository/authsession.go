package repository

import (
	"context"

	"github.com/mentortrack/backend/domain"
)

type AuthSessionRepository interface {
	Get(ctx context.Context, id string) (*domain.AuthSession, error)
	Save(ctx context.Context, session *domain.AuthSession) error
	Delete(ctx context.Context, id string) error
}
