package repository

import (
	"context"

	"github.com/mentortrack/backend/domain"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	// ListRecentForMentor returns the mentor's newest resources first.
	ListRecentForMentor(ctx context.Context, mentorID int64, limit int) ([]domain.Resource, error)
}
