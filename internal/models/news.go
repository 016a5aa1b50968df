package models

import "time"

// News represents a news item published to the client app.
type News struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Link          string    `json:"link"`
	PublishedDate time.Time `json:"published_date"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
