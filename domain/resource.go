package domain

import "time"

// DefaultResourceType is used when a resource is added without a type tag.
const DefaultResourceType = "link"

// Resource is a mentor-curated reference link. It belongs to the mentor,
// not to any single mentorship.
type Resource struct {
	ID           int64     `json:"id"`
	MentorID     int64     `json:"mentor_id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ResourceType string    `json:"resource_type"`
	CreatedAt    time.Time `json:"created_at"`
}
