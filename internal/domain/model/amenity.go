package model

import "time"

type Amenity struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	IsEnabled         bool      `json:"is_enabled"`
	TimeSlots         []string  `json:"time_slots"`
	MaxBookingsPerDay int       `json:"max_bookings_per_day"`
	Rules             string    `json:"rules"`
	CreatedAt         time.Time `json:"created_at"`
}
