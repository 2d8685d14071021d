package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.Status == "" {
		task.Status = domain.TaskAssigned
	}

	const query = `
	INSERT INTO tasks (mentorship_id, title, description, deadline, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at
	`

	var deadline interface{}
	if task.Deadline != nil {
		deadline = *task.Deadline
	}

	if err := r.pool.QueryRow(ctx, query,
		task.MentorshipID,
		task.Title,
		nullString(task.Description),
		deadline,
		task.Status,
	).Scan(&task.ID, &task.CreatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
	SELECT id, mentorship_id, title, description, deadline, status, created_at
	FROM tasks
	WHERE id = $1
	`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) ListForMentorship(ctx context.Context, mentorshipID int64) ([]domain.Task, error) {
	const query = `
	SELECT id, mentorship_id, title, description, deadline, status, created_at
	FROM tasks
	WHERE mentorship_id = $1
	ORDER BY deadline ASC NULLS LAST, id
	`
	rows, err := r.pool.Query(ctx, query, mentorshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	const query = `UPDATE tasks SET status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) CountPendingForMentor(ctx context.Context, mentorID int64) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM tasks t
	JOIN mentorships m ON t.mentorship_id = m.id
	WHERE m.mentor_id = $1 AND t.status IN ('assigned', 'in_progress')
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, mentorID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var (
		description *string
		deadline    *time.Time
	)

	if err := row.Scan(
		&task.ID,
		&task.MentorshipID,
		&task.Title,
		&description,
		&deadline,
		&task.Status,
		&task.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.Description = stringOrEmpty(description)
	task.Deadline = deadline
	return &task, nil
}
