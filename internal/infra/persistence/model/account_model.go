package model

import (
	"time"

	"github.com/google/uuid"
)

// LocalAccountModel mirrors the 'local_accounts' table. The unique index on member_id
// enforces the one-to-one relationship between a member and its credential row.
type LocalAccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MemberID       uuid.UUID `gorm:"type:uuid;unique;not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocalAccountModel) TableName() string {
	return "local_accounts"
}
