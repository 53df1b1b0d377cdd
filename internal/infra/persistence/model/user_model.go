// Package model contains the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username        string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Bio             string    `gorm:"type:text"`
	Image           string    `gorm:"type:varchar(500)"`
	EmailVerifiedAt *time.Time
	CreatedBy       string `gorm:"type:varchar(100);not null"`
	UpdatedBy       string `gorm:"type:varchar(100);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Sessions []SessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
