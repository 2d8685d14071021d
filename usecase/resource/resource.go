package resource

import (
	"context"

	"go.uber.org/zap"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
	"github.com/mentortrack/backend/usecase"
)

// UseCase is the catalog of mentor-curated links.
type UseCase struct {
	resources repository.ResourceRepository
	logger    *zap.Logger
}

func New(resources repository.ResourceRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		resources: resources,
		logger:    logger,
	}
}

// Add stores a new resource owned by the calling mentor. An omitted type
// defaults to "link".
func (uc *UseCase) Add(ctx context.Context, actor domain.Actor, title, url, resourceType string) (*domain.Resource, error) {
	if err := usecase.RequireMentor(actor); err != nil {
		return nil, err
	}
	if title == "" || url == "" {
		return nil, domain.ErrInvalidPayload
	}
	if resourceType == "" {
		resourceType = domain.DefaultResourceType
	}

	created, err := uc.resources.Create(ctx, &domain.Resource{
		MentorID:     actor.UserID,
		Title:        title,
		URL:          url,
		ResourceType: resourceType,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("resource added",
		zap.Int64("resource_id", created.ID),
		zap.Int64("mentor_id", actor.UserID),
	)
	return created, nil
}

// ListRecent returns the mentor's newest resources first.
func (uc *UseCase) ListRecent(ctx context.Context, mentorID int64, limit int) ([]domain.Resource, error) {
	return uc.resources.ListRecentForMentor(ctx, mentorID, limit)
}
