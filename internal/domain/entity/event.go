// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a promotional event published by a mentor.
type Event struct {
	ID           uuid.UUID // The unique ID of the event.
	MentorID     uuid.UUID // The member who publishes this event.
	Title        string    // The event title.
	Description  string    // A short description shown in listings.
	Content      string    // The event body.
	ThumbnailURL string    // Optional thumbnail image URL.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
