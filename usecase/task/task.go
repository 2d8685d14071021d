package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
	"github.com/mentortrack/backend/usecase"
)

// UseCase is the ledger of assignments scoped to mentorships.
type UseCase struct {
	tasks       repository.TaskRepository
	mentorships repository.MentorshipRepository
	logger      *zap.Logger
}

func New(tasks repository.TaskRepository, mentorships repository.MentorshipRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:       tasks,
		mentorships: mentorships,
		logger:      logger,
	}
}

// CreateInput carries the task creation fields.
type CreateInput struct {
	MentorshipID int64
	Title        string
	Description  string
	Deadline     *time.Time
}

// Create assigns a new task. Only the mentor who owns the mentorship may
// create tasks under it; an unresolvable mentorship id is reported
// separately from an ownership failure.
func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in CreateInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidPayload
	}

	m, err := uc.mentorships.GetByID(ctx, in.MentorshipID)
	if err != nil {
		return nil, domain.ErrInvalidMentorship
	}
	if err := usecase.RequireOwner(actor, m); err != nil {
		return nil, err
	}

	created, err := uc.tasks.Create(ctx, &domain.Task{
		MentorshipID: in.MentorshipID,
		Title:        in.Title,
		Description:  in.Description,
		Deadline:     in.Deadline,
		Status:       domain.TaskAssigned,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("task created",
		zap.Int64("task_id", created.ID),
		zap.Int64("mentorship_id", in.MentorshipID),
	)
	return created, nil
}

// UpdateStatus moves a task to a new status. Either participant of the
// owning mentorship may set any of the known statuses; no transition
// ordering is enforced.
func (uc *UseCase) UpdateStatus(ctx context.Context, actor domain.Actor, taskID int64, status domain.TaskStatus) error {
	if !domain.ValidTaskStatus(status) {
		return domain.ErrInvalidStatus
	}

	t, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	m, err := uc.mentorships.GetByID(ctx, t.MentorshipID)
	if err != nil {
		return err
	}
	if err := usecase.RequireParticipant(actor, m); err != nil {
		return err
	}

	if err := uc.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		return err
	}

	uc.logger.Info("task status updated",
		zap.Int64("task_id", taskID),
		zap.String("status", string(status)),
	)
	return nil
}

// ListForMentorship returns the mentorship's tasks in deadline order,
// undated tasks last. Only participants may read the list.
func (uc *UseCase) ListForMentorship(ctx context.Context, actor domain.Actor, mentorshipID int64) ([]domain.Task, error) {
	m, err := uc.mentorships.GetByID(ctx, mentorshipID)
	if err != nil {
		return nil, domain.ErrInvalidMentorship
	}
	if err := usecase.RequireParticipant(actor, m); err != nil {
		return nil, err
	}
	return uc.tasks.ListForMentorship(ctx, mentorshipID)
}
