package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
)

type resourceRepository struct {
	pool *pgxpool.Pool
}

// NewResourceRepository returns a Postgres-backed implementation of
// ResourceRepository.
func NewResourceRepository(pool *pgxpool.Pool) repository.ResourceRepository {
	return &resourceRepository{pool: pool}
}

func (r *resourceRepository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	if resource == nil {
		return nil, domain.ErrInvalidPayload
	}
	if resource.ResourceType == "" {
		resource.ResourceType = domain.DefaultResourceType
	}

	const query = `
	INSERT INTO resources (mentor_id, title, url, resource_type)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		resource.MentorID,
		resource.Title,
		resource.URL,
		resource.ResourceType,
	).Scan(&resource.ID, &resource.CreatedAt); err != nil {
		return nil, err
	}

	return resource, nil
}

func (r *resourceRepository) ListRecentForMentor(ctx context.Context, mentorID int64, limit int) ([]domain.Resource, error) {
	const query = `
	SELECT id, mentor_id, title, url, resource_type, created_at
	FROM resources
	WHERE mentor_id = $1
	ORDER BY created_at DESC
	LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, mentorID, clampLimit(limit, 100))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.MentorID, &res.Title, &res.URL, &res.ResourceType, &res.CreatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
