package domain

import "time"

// TaskStatus is the lifecycle state of an assignment. Any participant
// may move a task to any status; no transition ordering is enforced.
type TaskStatus string

const (
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether the given value is a known status.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskAssigned, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work scoped to one mentorship. Only the owning
// mentor creates tasks; either participant may update the status.
type Task struct {
	ID           int64      `json:"id"`
	MentorshipID int64      `json:"mentorship_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Status       TaskStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == TaskCompleted
}

// IsPending reports whether the task still needs attention, which feeds
// the mentor dashboard counter.
func (t *Task) IsPending() bool {
	return t != nil && (t.Status == TaskAssigned || t.Status == TaskInProgress)
}
