package domain

import "time"

// MentorshipStatus is the lifecycle state of a pairing. Ended rows are
// kept as history, never deleted.
type MentorshipStatus string

const (
	MentorshipActive MentorshipStatus = "active"
	MentorshipEnded  MentorshipStatus = "ended"
)

// Mentorship pairs exactly one mentor with one mentee. At most one
// active row may exist per (mentor, mentee) pair, and a mentee holds at
// most one active mentorship at a time.
type Mentorship struct {
	ID        int64            `json:"id"`
	MentorID  int64            `json:"mentor_id"`
	MenteeID  int64            `json:"mentee_id"`
	Status    MentorshipStatus `json:"status"`
	Progress  int              `json:"progress"`
	CreatedAt time.Time        `json:"created_at"`
}

func (m *Mentorship) IsActive() bool {
	return m != nil && m.Status == MentorshipActive
}

// HasParticipant reports whether the given user is either side of the
// relationship.
func (m *Mentorship) HasParticipant(userID int64) bool {
	return m != nil && (m.MentorID == userID || m.MenteeID == userID)
}

// MenteeSummary is a roster row for a mentor's dashboard: the mentee's
// public fields joined with the relationship they share.
type MenteeSummary struct {
	UserID       int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Progress     int    `json:"progress"`
	MentorshipID int64  `json:"mentorship_id"`
}

// MentorSummary is the mentee-side counterpart, carrying the mentor's
// expertise domain for display.
type MentorSummary struct {
	UserID       int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Domain       string `json:"domain,omitempty"`
	Progress     int    `json:"progress"`
	MentorshipID int64  `json:"mentorship_id"`
}
