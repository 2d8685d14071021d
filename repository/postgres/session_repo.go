package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
)

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a Postgres-backed implementation of
// SessionRepository for meeting records.
func NewSessionRepository(pool *pgxpool.Pool) repository.SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if session == nil {
		return nil, domain.ErrInvalidPayload
	}
	if session.Duration <= 0 {
		session.Duration = domain.DefaultSessionDuration
	}

	const query = `
	INSERT INTO sessions (mentorship_id, title, session_date, duration, meeting_link, notes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		session.MentorshipID,
		session.Title,
		session.SessionDate,
		session.Duration,
		nullString(session.MeetingLink),
		nullString(session.Notes),
	).Scan(&session.ID, &session.CreatedAt); err != nil {
		return nil, err
	}

	return session, nil
}

func (r *sessionRepository) ListUpcoming(ctx context.Context, mentorshipID int64, limit int) ([]domain.Session, error) {
	const query = `
	SELECT id, mentorship_id, title, session_date, duration, meeting_link, notes, created_at
	FROM sessions
	WHERE mentorship_id = $1 AND session_date > NOW()
	ORDER BY session_date ASC
	LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, mentorshipID, clampLimit(limit, 100))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		var link, notes *string
		if err := rows.Scan(&s.ID, &s.MentorshipID, &s.Title, &s.SessionDate, &s.Duration, &link, &notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.MeetingLink = stringOrEmpty(link)
		s.Notes = stringOrEmpty(notes)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) CountUpcomingForMentor(ctx context.Context, mentorID int64) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM sessions s
	JOIN mentorships m ON s.mentorship_id = m.id
	WHERE m.mentor_id = $1 AND s.session_date > NOW()
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, mentorID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
