package domain

// Actor is the authenticated caller of an operation. It is resolved once
// at the HTTP boundary from the login session and then passed explicitly
// into every use case; no component reads caller identity from ambient
// state.
type Actor struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (a Actor) IsMentor() bool {
	return a.Role == RoleMentor
}

func (a Actor) IsMentee() bool {
	return a.Role == RoleMentee
}
