package transport

// SignupRequest is the POST /signup body.
type SignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	Domain          string `json:"domain"`
	Bio             string `json:"bio"`
}

// LoginRequest is the POST /login body. All three fields are required.
type LoginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskCreateRequest is the POST /api/tasks/create body. Deadline is an
// optional YYYY-MM-DD date.
type TaskCreateRequest struct {
	MentorshipID int64  `json:"mentorship_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Deadline     string `json:"deadline"`
}

// TaskStatusRequest is the POST /api/tasks/{id}/update-status body.
type TaskStatusRequest struct {
	Status string `json:"status"`
}

// ResourceCreateRequest is the POST /api/resources/create body. Type
// defaults to "link" when omitted.
type ResourceCreateRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// MentorshipCreateRequest is the POST /api/mentorships/create body.
type MentorshipCreateRequest struct {
	MentorID int64 `json:"mentor_id"`
	MenteeID int64 `json:"mentee_id"`
}

// MentorshipProgressRequest is the POST /api/mentorships/{id}/progress body.
type MentorshipProgressRequest struct {
	Progress int `json:"progress"`
}
