package model

import (
	"time"

	"github.com/google/uuid"
)

// MentoringSessionModel mirrors the 'mentoring_sessions' table. MentorID references members.id (UUID).
type MentoringSessionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MentorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionType string    `gorm:"type:varchar(20);not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Content     string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MentoringSessionModel) TableName() string {
	return "mentoring_sessions"
}
