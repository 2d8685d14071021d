package repository

import (
	"context"

	"github.com/mentortrack/backend/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	// ListUpcoming returns sessions after now in ascending date order.
	// limit <= 0 means no limit.
	ListUpcoming(ctx context.Context, mentorshipID int64, limit int) ([]domain.Session, error)
	CountUpcomingForMentor(ctx context.Context, mentorID int64) (int, error)
}
