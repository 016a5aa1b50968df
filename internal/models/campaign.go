package models

import "time"

// Campaign represents a promotional campaign shown in the client app.
// ValidFrom/ValidUntil are optional; a nil bound means the validity
// window is unbounded on that side.
type Campaign struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Link        string     `json:"link"`
	IsActive    bool       `json:"is_active"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
