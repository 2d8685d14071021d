package domain

import "time"

// AuthSession is the server-side login session stored in Redis. Its ID
// is the value of the session cookie; everything the authorization
// checks need about the caller is captured at login time.
type AuthSession struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *AuthSession) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}

// Actor converts the session into the explicit caller identity threaded
// through the use cases.
func (s *AuthSession) Actor() Actor {
	if s == nil {
		return Actor{}
	}
	return Actor{
		UserID:   s.UserID,
		FullName: s.FullName,
		Email:    s.Email,
		Role:     s.Role,
	}
}
