package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. MentorID references members.id (UUID).
type EventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MentorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:varchar(500)"`
	Content      string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
