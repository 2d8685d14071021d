package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
	"github.com/mentortrack/backend/usecase"
)

// UseCase stores and reads meeting records. Creation has no interactive
// surface; the seeding path is its only producer.
type UseCase struct {
	sessions    repository.SessionRepository
	mentorships repository.MentorshipRepository
	logger      *zap.Logger
}

func New(sessions repository.SessionRepository, mentorships repository.MentorshipRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		sessions:    sessions,
		mentorships: mentorships,
		logger:      logger,
	}
}

// CreateInput carries the meeting record fields. Duration defaults to 60
// minutes when left zero.
type CreateInput struct {
	MentorshipID int64
	Title        string
	SessionDate  time.Time
	Duration     int
	MeetingLink  string
	Notes        string
}

// Create inserts a meeting record. Beyond required fields and a
// resolvable mentorship, no validation applies.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*domain.Session, error) {
	if in.Title == "" || in.SessionDate.IsZero() {
		return nil, domain.ErrInvalidPayload
	}
	if _, err := uc.mentorships.GetByID(ctx, in.MentorshipID); err != nil {
		return nil, domain.ErrInvalidMentorship
	}
	if in.Duration <= 0 {
		in.Duration = domain.DefaultSessionDuration
	}

	return uc.sessions.Create(ctx, &domain.Session{
		MentorshipID: in.MentorshipID,
		Title:        in.Title,
		SessionDate:  in.SessionDate,
		Duration:     in.Duration,
		MeetingLink:  in.MeetingLink,
		Notes:        in.Notes,
	})
}

// ListUpcoming returns future sessions in date order. Only participants
// of the mentorship may read them.
func (uc *UseCase) ListUpcoming(ctx context.Context, actor domain.Actor, mentorshipID int64, limit int) ([]domain.Session, error) {
	m, err := uc.mentorships.GetByID(ctx, mentorshipID)
	if err != nil {
		return nil, domain.ErrInvalidMentorship
	}
	if err := usecase.RequireParticipant(actor, m); err != nil {
		return nil, err
	}
	return uc.sessions.ListUpcoming(ctx, mentorshipID, limit)
}
