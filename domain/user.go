package domain

import "time"

// Role distinguishes the two sides of a mentorship. A user's role is
// fixed at signup.
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// ValidRole reports whether the given value is a known role.
func ValidRole(r Role) bool {
	return r == RoleMentor || r == RoleMentee
}

// User represents a registered identity. PasswordHash is the bcrypt hash
// of the signup password; the plaintext is never stored.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Domain       string    `json:"domain,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsMentor() bool {
	return u != nil && u.Role == RoleMentor
}
