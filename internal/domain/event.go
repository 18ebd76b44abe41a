package domain

import "time"

// EventStatus enumerates lifecycle states for catalog events.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

// Event is a single catalog entry owned by a category.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	Venue       string
	ImageURL    *string
	Status      EventStatus
	CategoryID  string
	// CategoryName is populated on reads joined with the category.
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
