package model

import (
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is a registered account: a resident by default, an admin only when
// provisioned out of band. No code path promotes USER to ADMIN.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	FlatNumber     *string   `json:"flat_number"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
