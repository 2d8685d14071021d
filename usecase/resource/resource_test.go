package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/mentortrack/backend/domain"
)

type mockResourceRepo struct {
	createFn func(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	listFn   func(ctx context.Context, mentorID int64, limit int) ([]domain.Resource, error)
}

func (m *mockResourceRepo) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	if m.createFn != nil {
		return m.createFn(ctx, resource)
	}
	resource.ID = 1
	return resource, nil
}

func (m *mockResourceRepo) ListRecentForMentor(ctx context.Context, mentorID int64, limit int) ([]domain.Resource, error) {
	if m.listFn != nil {
		return m.listFn(ctx, mentorID, limit)
	}
	return nil, nil
}

var mentor = domain.Actor{UserID: 1, FullName: "Mentor One", Role: domain.RoleMentor}

func TestAddResource(t *testing.T) {
	var stored *domain.Resource
	repo := &mockResourceRepo{
		createFn: func(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
			resource.ID = 3
			stored = resource
			return resource, nil
		},
	}
	uc := New(repo, nil)

	created, err := uc.Add(context.Background(), mentor, "Go Blog", "https://go.dev/blog/", "documentation")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.ID != 3 || stored.MentorID != mentor.UserID {
		t.Fatalf("resource must be owned by the caller: %+v", stored)
	}
	if stored.ResourceType != "documentation" {
		t.Fatalf("explicit type must be kept, got %q", stored.ResourceType)
	}
}

func TestAddResourceDefaultType(t *testing.T) {
	var stored *domain.Resource
	repo := &mockResourceRepo{
		createFn: func(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
			stored = resource
			return resource, nil
		},
	}
	uc := New(repo, nil)

	if _, err := uc.Add(context.Background(), mentor, "Effective Go", "https://go.dev/doc/effective_go", ""); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if stored.ResourceType != domain.DefaultResourceType {
		t.Fatalf("omitted type must default to %q, got %q", domain.DefaultResourceType, stored.ResourceType)
	}
}

func TestAddResourceMentorOnly(t *testing.T) {
	uc := New(&mockResourceRepo{}, nil)

	mentee := domain.Actor{UserID: 2, Role: domain.RoleMentee}
	if _, err := uc.Add(context.Background(), mentee, "Title", "https://example.com", ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for mentee, got %v", err)
	}
}

func TestAddResourceRequiredFields(t *testing.T) {
	uc := New(&mockResourceRepo{}, nil)

	if _, err := uc.Add(context.Background(), mentor, "", "https://example.com", ""); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for empty title, got %v", err)
	}
	if _, err := uc.Add(context.Background(), mentor, "Title", "", ""); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for empty url, got %v", err)
	}
}
