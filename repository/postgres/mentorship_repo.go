package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
)

type mentorshipRepository struct {
	pool *pgxpool.Pool
}

// NewMentorshipRepository returns a Postgres-backed implementation of
// MentorshipRepository.
func NewMentorshipRepository(pool *pgxpool.Pool) repository.MentorshipRepository {
	return &mentorshipRepository{pool: pool}
}

func (r *mentorshipRepository) Create(ctx context.Context, mentorship *domain.Mentorship) (*domain.Mentorship, error) {
	if mentorship == nil {
		return nil, domain.ErrInvalidPayload
	}
	if mentorship.Status == "" {
		mentorship.Status = domain.MentorshipActive
	}

	const query = `
	INSERT INTO mentorships (mentor_id, mentee_id, status, progress)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`

	// The partial unique indexes on active rows make concurrent creates
	// for the same pair or mentee fail here rather than racing past the
	// use-case existence check.
	if err := r.pool.QueryRow(ctx, query,
		mentorship.MentorID,
		mentorship.MenteeID,
		mentorship.Status,
		mentorship.Progress,
	).Scan(&mentorship.ID, &mentorship.CreatedAt); err != nil {
		if isUniqueViolation(err, "") {
			return nil, domain.ErrDuplicateMentorship
		}
		return nil, err
	}

	return mentorship, nil
}

func (r *mentorshipRepository) GetByID(ctx context.Context, id int64) (*domain.Mentorship, error) {
	const query = `
	SELECT id, mentor_id, mentee_id, status, progress, created_at
	FROM mentorships
	WHERE id = $1
	`
	return scanMentorship(r.pool.QueryRow(ctx, query, id))
}

func (r *mentorshipRepository) FindActivePair(ctx context.Context, mentorID, menteeID int64) (*domain.Mentorship, error) {
	const query = `
	SELECT id, mentor_id, mentee_id, status, progress, created_at
	FROM mentorships
	WHERE mentor_id = $1 AND mentee_id = $2 AND status = 'active'
	`
	return scanMentorship(r.pool.QueryRow(ctx, query, mentorID, menteeID))
}

func (r *mentorshipRepository) ListActiveMentees(ctx context.Context, mentorID int64) ([]domain.MenteeSummary, error) {
	const query = `
	SELECT u.id, u.full_name, u.email, m.progress, m.id
	FROM users u
	JOIN mentorships m ON u.id = m.mentee_id
	WHERE m.mentor_id = $1 AND m.status = 'active'
	ORDER BY m.created_at
	`
	rows, err := r.pool.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentees []domain.MenteeSummary
	for rows.Next() {
		var s domain.MenteeSummary
		if err := rows.Scan(&s.UserID, &s.FullName, &s.Email, &s.Progress, &s.MentorshipID); err != nil {
			return nil, err
		}
		mentees = append(mentees, s)
	}
	return mentees, rows.Err()
}

func (r *mentorshipRepository) ActiveMentorFor(ctx context.Context, menteeID int64) (*domain.MentorSummary, error) {
	const query = `
	SELECT u.id, u.full_name, u.email, u.domain, m.progress, m.id
	FROM users u
	JOIN mentorships m ON u.id = m.mentor_id
	WHERE m.mentee_id = $1 AND m.status = 'active'
	`
	var s domain.MentorSummary
	var expertise *string
	err := r.pool.QueryRow(ctx, query, menteeID).Scan(
		&s.UserID, &s.FullName, &s.Email, &expertise, &s.Progress, &s.MentorshipID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMentorshipNotFound
		}
		return nil, err
	}
	s.Domain = stringOrEmpty(expertise)
	return &s, nil
}

func (r *mentorshipRepository) UpdateStatus(ctx context.Context, id int64, status domain.MentorshipStatus) error {
	const query = `UPDATE mentorships SET status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMentorshipNotFound
	}
	return nil
}

func (r *mentorshipRepository) UpdateProgress(ctx context.Context, id int64, progress int) error {
	const query = `UPDATE mentorships SET progress = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, progress)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMentorshipNotFound
	}
	return nil
}

func scanMentorship(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Mentorship, error) {
	var m domain.Mentorship
	if err := row.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.Status, &m.Progress, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMentorshipNotFound
		}
		return nil, err
	}
	return &m, nil
}
