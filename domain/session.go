package domain

import "time"

// Session is a scheduled meeting record scoped to one mentorship, not a
// login session (see AuthSession). Rows are written by the seeding path
// and read back on dashboards.
type Session struct {
	ID           int64     `json:"id"`
	MentorshipID int64     `json:"mentorship_id"`
	Title        string    `json:"title"`
	SessionDate  time.Time `json:"session_date"`
	Duration     int       `json:"duration"`
	MeetingLink  string    `json:"meeting_link,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DefaultSessionDuration is applied when a session is created without an
// explicit duration, in minutes.
const DefaultSessionDuration = 60

// IsUpcoming reports whether the session lies after the reference time.
func (s *Session) IsUpcoming(reference time.Time) bool {
	if s == nil {
		return false
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return s.SessionDate.After(reference)
}
