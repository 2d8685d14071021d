package repository

import (
	"context"

	"github.com/mentortrack/backend/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	// ListForMentorship returns tasks ordered by ascending deadline with
	// undated tasks last.
	ListForMentorship(ctx context.Context, mentorshipID int64) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	// CountPendingForMentor counts assigned and in_progress tasks across
	// all of the mentor's active mentorships.
	CountPendingForMentor(ctx context.Context, mentorID int64) (int, error)
}
