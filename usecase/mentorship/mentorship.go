package mentorship

import (
	"context"

	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
	"github.com/mentortrack/backend/usecase"
)

// UseCase is the registry of mentor-mentee pairings.
type UseCase struct {
	mentorships repository.MentorshipRepository
	users       repository.UserRepository
	logger      *zap.Logger
}

func New(mentorships repository.MentorshipRepository, users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		mentorships: mentorships,
		users:       users,
		logger:      logger,
	}
}

// Create pairs a mentor with a mentee. Both ids must resolve to users
// carrying the matching role, the pair must not already have an active
// relationship, and the mentee must not already have an active mentor.
// The friendly existence check here is backed by partial unique indexes
// in the store, so a concurrent duplicate loses at insert time.
func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, mentorID, menteeID int64) (*domain.Mentorship, error) {
	if actor.UserID == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	mentor, err := uc.users.GetByID(ctx, mentorID)
	if err != nil {
		return nil, domain.ErrInvalidMentorship
	}
	mentee, err := uc.users.GetByID(ctx, menteeID)
	if err != nil {
		return nil, domain.ErrInvalidMentorship
	}
	if mentor.Role != domain.RoleMentor || mentee.Role != domain.RoleMentee {
		return nil, domain.ErrInvalidMentorship
	}

	if existing, err := uc.mentorships.FindActivePair(ctx, mentorID, menteeID); err == nil && existing != nil {
		return nil, domain.ErrDuplicateMentorship
	}

	created, err := uc.mentorships.Create(ctx, &domain.Mentorship{
		MentorID: mentorID,
		MenteeID: menteeID,
		Status:   domain.MentorshipActive,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("mentorship created",
		zap.Int64("mentorship_id", created.ID),
		zap.Int64("mentor_id", mentorID),
		zap.Int64("mentee_id", menteeID),
	)
	return created, nil
}

// ListActiveMentees returns the mentor's current roster.
func (uc *UseCase) ListActiveMentees(ctx context.Context, mentorID int64) ([]domain.MenteeSummary, error) {
	return uc.mentorships.ListActiveMentees(ctx, mentorID)
}

// ActiveMentorFor returns the mentee's single active mentor, or
// domain.ErrMentorshipNotFound when none exists.
func (uc *UseCase) ActiveMentorFor(ctx context.Context, menteeID int64) (*domain.MentorSummary, error) {
	return uc.mentorships.ActiveMentorFor(ctx, menteeID)
}

// Get resolves a mentorship by id for the authorization checks of other
// features.
func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Mentorship, error) {
	return uc.mentorships.GetByID(ctx, id)
}

// Owns reports whether the caller is the mentor of the given mentorship.
func (uc *UseCase) Owns(ctx context.Context, callerID, mentorshipID int64) (bool, error) {
	m, err := uc.mentorships.GetByID(ctx, mentorshipID)
	if err != nil {
		return false, err
	}
	return m.MentorID == callerID, nil
}

// End soft-closes the relationship; the row stays around as history.
// Only the owning mentor may end it.
func (uc *UseCase) End(ctx context.Context, actor domain.Actor, mentorshipID int64) error {
	m, err := uc.mentorships.GetByID(ctx, mentorshipID)
	if err != nil {
		return err
	}
	if err := usecase.RequireOwner(actor, m); err != nil {
		return err
	}
	if err := uc.mentorships.UpdateStatus(ctx, mentorshipID, domain.MentorshipEnded); err != nil {
		return err
	}
	uc.logger.Info("mentorship ended", zap.Int64("mentorship_id", mentorshipID))
	return nil
}

// UpdateProgress sets the relationship's completion percentage. Only the
// owning mentor may move it.
func (uc *UseCase) UpdateProgress(ctx context.Context, actor domain.Actor, mentorshipID int64, progress int) error {
	if progress < 0 || progress > 100 {
		return domain.ErrInvalidProgress
	}
	m, err := uc.mentorships.GetByID(ctx, mentorshipID)
	if err != nil {
		return err
	}
	if err := usecase.RequireOwner(actor, m); err != nil {
		return err
	}
	return uc.mentorships.UpdateProgress(ctx, mentorshipID, progress)
}
