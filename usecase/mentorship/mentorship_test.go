package mentorship

import (
	"context"
	"errors"
	"testing"

	"github.com/mentortrack/backend/domain"
)

type mockMentorshipRepo struct {
	createFn         func(ctx context.Context, m *domain.Mentorship) (*domain.Mentorship, error)
	getByIDFn        func(ctx context.Context, id int64) (*domain.Mentorship, error)
	findActivePairFn func(ctx context.Context, mentorID, menteeID int64) (*domain.Mentorship, error)
	updateStatusFn   func(ctx context.Context, id int64, status domain.MentorshipStatus) error
	updateProgressFn func(ctx context.Context, id int64, progress int) error
}

func (m *mockMentorshipRepo) Create(ctx context.Context, ms *domain.Mentorship) (*domain.Mentorship, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ms)
	}
	ms.ID = 1
	return ms, nil
}

func (m *mockMentorshipRepo) GetByID(ctx context.Context, id int64) (*domain.Mentorship, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrMentorshipNotFound
}

func (m *mockMentorshipRepo) FindActivePair(ctx context.Context, mentorID, menteeID int64) (*domain.Mentorship, error) {
	if m.findActivePairFn != nil {
		return m.findActivePairFn(ctx, mentorID, menteeID)
	}
	return nil, domain.ErrMentorshipNotFound
}

func (m *mockMentorshipRepo) ListActiveMentees(ctx context.Context, mentorID int64) ([]domain.MenteeSummary, error) {
	return nil, nil
}

func (m *mockMentorshipRepo) ActiveMentorFor(ctx context.Context, menteeID int64) (*domain.MentorSummary, error) {
	return nil, domain.ErrMentorshipNotFound
}

func (m *mockMentorshipRepo) UpdateStatus(ctx context.Context, id int64, status domain.MentorshipStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockMentorshipRepo) UpdateProgress(ctx context.Context, id int64, progress int) error {
	if m.updateProgressFn != nil {
		return m.updateProgressFn(ctx, id, progress)
	}
	return nil
}

type mockUserRepo struct {
	users map[int64]*domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return nil, nil
}

func pairedUsers() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, FullName: "Mentor One", Role: domain.RoleMentor},
		2: {ID: 2, FullName: "Mentee Two", Role: domain.RoleMentee},
	}}
}

var caller = domain.Actor{UserID: 1, Role: domain.RoleMentor}

func TestCreateMentorship(t *testing.T) {
	repo := &mockMentorshipRepo{}
	uc := New(repo, pairedUsers(), nil)

	created, err := uc.Create(context.Background(), caller, 1, 2)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.MentorshipActive || created.Progress != 0 {
		t.Fatalf("new mentorship must start active with zero progress: %+v", created)
	}
}

func TestCreateMentorshipDuplicate(t *testing.T) {
	inserted := false
	repo := &mockMentorshipRepo{
		findActivePairFn: func(ctx context.Context, mentorID, menteeID int64) (*domain.Mentorship, error) {
			return &domain.Mentorship{ID: 5, MentorID: mentorID, MenteeID: menteeID, Status: domain.MentorshipActive}, nil
		},
		createFn: func(ctx context.Context, m *domain.Mentorship) (*domain.Mentorship, error) {
			inserted = true
			return m, nil
		},
	}
	uc := New(repo, pairedUsers(), nil)

	if _, err := uc.Create(context.Background(), caller, 1, 2); !errors.Is(err, domain.ErrDuplicateMentorship) {
		t.Fatalf("expected ErrDuplicateMentorship, got %v", err)
	}
	if inserted {
		t.Fatal("duplicate pair must be rejected before insert")
	}
}

func TestCreateMentorshipConcurrentDuplicate(t *testing.T) {
	// The existence check passes but the store's unique index rejects
	// the second insert, as under a concurrent race.
	repo := &mockMentorshipRepo{
		createFn: func(ctx context.Context, m *domain.Mentorship) (*domain.Mentorship, error) {
			return nil, domain.ErrDuplicateMentorship
		},
	}
	uc := New(repo, pairedUsers(), nil)

	if _, err := uc.Create(context.Background(), caller, 1, 2); !errors.Is(err, domain.ErrDuplicateMentorship) {
		t.Fatalf("expected ErrDuplicateMentorship from store, got %v", err)
	}
}

func TestCreateMentorshipRoleValidation(t *testing.T) {
	uc := New(&mockMentorshipRepo{}, pairedUsers(), nil)

	// Swapped ids: mentee as mentor side.
	if _, err := uc.Create(context.Background(), caller, 2, 1); !errors.Is(err, domain.ErrInvalidMentorship) {
		t.Fatalf("expected ErrInvalidMentorship for swapped roles, got %v", err)
	}
	// Unknown user id.
	if _, err := uc.Create(context.Background(), caller, 1, 99); !errors.Is(err, domain.ErrInvalidMentorship) {
		t.Fatalf("expected ErrInvalidMentorship for unknown mentee, got %v", err)
	}
}

func TestEndMentorship(t *testing.T) {
	m := &domain.Mentorship{ID: 10, MentorID: 1, MenteeID: 2, Status: domain.MentorshipActive}
	var endedWith domain.MentorshipStatus
	repo := &mockMentorshipRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Mentorship, error) { return m, nil },
		updateStatusFn: func(ctx context.Context, id int64, status domain.MentorshipStatus) error {
			endedWith = status
			return nil
		},
	}
	uc := New(repo, pairedUsers(), nil)

	if err := uc.End(context.Background(), caller, 10); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
	if endedWith != domain.MentorshipEnded {
		t.Fatalf("expected status 'ended', got %q", endedWith)
	}

	mentee := domain.Actor{UserID: 2, Role: domain.RoleMentee}
	if err := uc.End(context.Background(), mentee, 10); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for mentee, got %v", err)
	}
}

func TestUpdateProgressBounds(t *testing.T) {
	uc := New(&mockMentorshipRepo{}, pairedUsers(), nil)

	for _, p := range []int{-1, 101} {
		if err := uc.UpdateProgress(context.Background(), caller, 10, p); !errors.Is(err, domain.ErrInvalidProgress) {
			t.Fatalf("expected ErrInvalidProgress for %d, got %v", p, err)
		}
	}
}
