package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'members' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type MemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	PhoneNumber string    `gorm:"type:varchar(20);unique;not null"`
	Role        string    `gorm:"type:varchar(20);not null;default:'USER'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LocalAccount *LocalAccountModel `gorm:"foreignKey:MemberID"`
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
