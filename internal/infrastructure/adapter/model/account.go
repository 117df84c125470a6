package model

import (
	"time"
)

// Account is the accounts table row backing users/{userId}
type Account struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	Username  string    `gorm:"type:varchar(255);not null;default:''"`
	Points    int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
