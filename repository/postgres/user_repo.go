package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation of UserRepository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO users (full_name, email, password_hash, role, domain, bio)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Role,
		nullString(user.Domain),
		nullString(user.Bio),
	).Scan(&user.ID, &user.CreatedAt); err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
	SELECT id, full_name, email, password_hash, role, domain, bio, created_at
	FROM users
	WHERE id = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	const query = `
	SELECT id, full_name, email, password_hash, role, domain, bio, created_at
	FROM users
	WHERE email = $1 AND role = $2
	`
	return scanUser(r.pool.QueryRow(ctx, query, email, role))
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	const query = `
	SELECT id, full_name, email, password_hash, role, domain, bio, created_at
	FROM users
	WHERE role = $1
	ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	var user domain.User
	var expertise, bio *string

	if err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&expertise,
		&bio,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Domain = stringOrEmpty(expertise)
	user.Bio = stringOrEmpty(bio)
	return &user, nil
}
