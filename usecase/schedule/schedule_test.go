package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mentortrack/backend/domain"
)

type mockSessionRepo struct {
	createFn func(ctx context.Context, session *domain.Session) (*domain.Session, error)
	listFn   func(ctx context.Context, mentorshipID int64, limit int) ([]domain.Session, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	session.ID = 1
	return session, nil
}

func (m *mockSessionRepo) ListUpcoming(ctx context.Context, mentorshipID int64, limit int) ([]domain.Session, error) {
	if m.listFn != nil {
		return m.listFn(ctx, mentorshipID, limit)
	}
	return nil, nil
}

func (m *mockSessionRepo) CountUpcomingForMentor(ctx context.Context, mentorID int64) (int, error) {
	return 0, nil
}

type mockMentorshipRepo struct {
	byID map[int64]*domain.Mentorship
}

func (m *mockMentorshipRepo) Create(ctx context.Context, ms *domain.Mentorship) (*domain.Mentorship, error) {
	return ms, nil
}

func (m *mockMentorshipRepo) GetByID(ctx context.Context, id int64) (*domain.Mentorship, error) {
	if ms, ok := m.byID[id]; ok {
		return ms, nil
	}
	return nil, domain.ErrMentorshipNotFound
}

func (m *mockMentorshipRepo) FindActivePair(ctx context.Context, mentorID, menteeID int64) (*domain.Mentorship, error) {
	return nil, domain.ErrMentorshipNotFound
}

func (m *mockMentorshipRepo) ListActiveMentees(ctx context.Context, mentorID int64) ([]domain.MenteeSummary, error) {
	return nil, nil
}

func (m *mockMentorshipRepo) ActiveMentorFor(ctx context.Context, menteeID int64) (*domain.MentorSummary, error) {
	return nil, domain.ErrMentorshipNotFound
}

func (m *mockMentorshipRepo) UpdateStatus(ctx context.Context, id int64, status domain.MentorshipStatus) error {
	return nil
}

func (m *mockMentorshipRepo) UpdateProgress(ctx context.Context, id int64, progress int) error {
	return nil
}

func singleMentorship() *mockMentorshipRepo {
	return &mockMentorshipRepo{byID: map[int64]*domain.Mentorship{
		10: {ID: 10, MentorID: 1, MenteeID: 2, Status: domain.MentorshipActive},
	}}
}

func TestCreateSessionDefaultDuration(t *testing.T) {
	var stored *domain.Session
	sessions := &mockSessionRepo{
		createFn: func(ctx context.Context, session *domain.Session) (*domain.Session, error) {
			stored = session
			return session, nil
		},
	}
	uc := New(sessions, singleMentorship(), nil)

	_, err := uc.Create(context.Background(), CreateInput{
		MentorshipID: 10,
		Title:        "Weekly Check-in",
		SessionDate:  time.Now().AddDate(0, 0, 3),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if stored.Duration != domain.DefaultSessionDuration {
		t.Fatalf("zero duration must default to %d, got %d", domain.DefaultSessionDuration, stored.Duration)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	uc := New(&mockSessionRepo{}, singleMentorship(), nil)

	if _, err := uc.Create(context.Background(), CreateInput{MentorshipID: 10, SessionDate: time.Now()}); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for empty title, got %v", err)
	}
	if _, err := uc.Create(context.Background(), CreateInput{MentorshipID: 10, Title: "No date"}); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for zero date, got %v", err)
	}
	if _, err := uc.Create(context.Background(), CreateInput{MentorshipID: 99, Title: "Orphan", SessionDate: time.Now()}); !errors.Is(err, domain.ErrInvalidMentorship) {
		t.Fatalf("expected ErrInvalidMentorship, got %v", err)
	}
}

func TestListUpcomingParticipantsOnly(t *testing.T) {
	sessions := &mockSessionRepo{
		listFn: func(ctx context.Context, mentorshipID int64, limit int) ([]domain.Session, error) {
			return []domain.Session{{ID: 1, MentorshipID: mentorshipID, Title: "Weekly Check-in"}}, nil
		},
	}
	uc := New(sessions, singleMentorship(), nil)

	mentee := domain.Actor{UserID: 2, Role: domain.RoleMentee}
	got, err := uc.ListUpcoming(context.Background(), mentee, 10, 3)
	if err != nil {
		t.Fatalf("ListUpcoming returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}

	outsider := domain.Actor{UserID: 9, Role: domain.RoleMentee}
	if _, err := uc.ListUpcoming(context.Background(), outsider, 10, 3); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for outsider, got %v", err)
	}
}
