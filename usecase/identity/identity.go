package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/repository"
)

// UseCase owns user registration and credential verification. It is the
// only component that ever sees a plaintext password.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.AuthSessionRepository
	ttl      time.Duration
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.AuthSessionRepository, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
	Domain          string
	Bio             string
}

// Register creates a new user with a bcrypt password hash. The role is
// fixed here and never changes afterwards.
func (uc *UseCase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Domain:       in.Domain,
		Bio:          in.Bio,
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user registered",
		zap.Int64("user_id", created.ID),
		zap.String("role", string(created.Role)),
	)
	return created, nil
}

// Login verifies (email, role, password) and, on success, establishes a
// server-side session. A missing user and a wrong password produce the
// same error.
func (uc *UseCase) Login(ctx context.Context, email string, role domain.Role, password string) (*domain.AuthSession, error) {
	if email == "" || role == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := uc.users.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.AuthSession{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Info("user logged in", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return session, nil
}

// Logout revokes the session. Missing sessions are not an error.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// ActorFromSession resolves a session cookie value into the explicit
// caller identity used by every operation.
func (uc *UseCase) ActorFromSession(ctx context.Context, sessionID string) (domain.Actor, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Actor{}, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return domain.Actor{}, domain.ErrAuthSessionNotFound
	}
	return session.Actor(), nil
}
