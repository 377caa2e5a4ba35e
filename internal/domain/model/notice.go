package model

import "time"

const (
	NoticePriorityNormal    = "normal"
	NoticePriorityImportant = "important"
	NoticePriorityUrgent    = "urgent"
)

type Notice struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	IsActive    bool       `json:"is_active"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
