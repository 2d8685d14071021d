package repository

import (
	"context"

	"github.com/mentortrack/backend/domain"
)

type MentorshipRepository interface {
	// Create inserts a new active relationship. The store's partial
	// unique indexes reject a second active row for the same pair or
	// the same mentee, surfacing domain.ErrDuplicateMentorship.
	Create(ctx context.Context, mentorship *domain.Mentorship) (*domain.Mentorship, error)
	GetByID(ctx context.Context, id int64) (*domain.Mentorship, error)
	FindActivePair(ctx context.Context, mentorID, menteeID int64) (*domain.Mentorship, error)
	ListActiveMentees(ctx context.Context, mentorID int64) ([]domain.MenteeSummary, error)
	ActiveMentorFor(ctx context.Context, menteeID int64) (*domain.MentorSummary, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MentorshipStatus) error
	UpdateProgress(ctx context.Context, id int64, progress int) error
}
