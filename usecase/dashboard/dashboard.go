package dashboard

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
	"github.com/mentortrack/backend/usecase"
)

const (
	recentResourceLimit   = 3
	upcomingSessionsLimit = 3
)

// UseCase assembles the role-specific dashboard payloads by joining the
// registry, ledger, scheduler and catalog views for one caller.
type UseCase struct {
	mentorships repository.MentorshipRepository
	tasks       repository.TaskRepository
	sessions    repository.SessionRepository
	resources   repository.ResourceRepository
	logger      *zap.Logger
}

func New(
	mentorships repository.MentorshipRepository,
	tasks repository.TaskRepository,
	sessions repository.SessionRepository,
	resources repository.ResourceRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		mentorships: mentorships,
		tasks:       tasks,
		sessions:    sessions,
		resources:   resources,
		logger:      logger,
	}
}

// MentorView is the mentor dashboard payload.
type MentorView struct {
	UserName         string                 `json:"user_name"`
	Mentees          []domain.MenteeSummary `json:"mentees"`
	TotalMentees     int                    `json:"total_mentees"`
	PendingTasks     int                    `json:"pending_tasks"`
	UpcomingSessions int                    `json:"upcoming_sessions"`
	Resources        []domain.Resource      `json:"resources"`
}

// MenteeView is the mentee dashboard payload. Mentor is nil while the
// mentee is unpaired, in which case tasks and sessions stay empty.
type MenteeView struct {
	UserName string                `json:"user_name"`
	Mentor   *domain.MentorSummary `json:"mentor,omitempty"`
	Tasks    []domain.Task         `json:"tasks"`
	Sessions []domain.Session      `json:"sessions"`
}

// Mentor builds the roster, counters and recent resources for a mentor.
func (uc *UseCase) Mentor(ctx context.Context, actor domain.Actor) (*MentorView, error) {
	if err := usecase.RequireMentor(actor); err != nil {
		return nil, err
	}

	mentees, err := uc.mentorships.ListActiveMentees(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	pending, err := uc.tasks.CountPendingForMentor(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	upcoming, err := uc.sessions.CountUpcomingForMentor(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	resources, err := uc.resources.ListRecentForMentor(ctx, actor.UserID, recentResourceLimit)
	if err != nil {
		return nil, err
	}

	return &MentorView{
		UserName:         actor.FullName,
		Mentees:          mentees,
		TotalMentees:     len(mentees),
		PendingTasks:     pending,
		UpcomingSessions: upcoming,
		Resources:        resources,
	}, nil
}

// Mentee builds the mentor card, task list and next sessions for a
// mentee.
func (uc *UseCase) Mentee(ctx context.Context, actor domain.Actor) (*MenteeView, error) {
	if err := usecase.RequireRole(actor, domain.RoleMentee); err != nil {
		return nil, err
	}

	view := &MenteeView{UserName: actor.FullName}

	mentor, err := uc.mentorships.ActiveMentorFor(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrMentorshipNotFound) {
			return view, nil
		}
		return nil, err
	}
	view.Mentor = mentor

	if view.Tasks, err = uc.tasks.ListForMentorship(ctx, mentor.MentorshipID); err != nil {
		return nil, err
	}
	if view.Sessions, err = uc.sessions.ListUpcoming(ctx, mentor.MentorshipID, upcomingSessionsLimit); err != nil {
		return nil, err
	}
	return view, nil
}
