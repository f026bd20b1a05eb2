package model

import (
	"time"
)

// Token is a persisted bearer token. The unique user_id index keeps one row per user.
type Token struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Value     string    `gorm:"uniqueIndex;not null;size:1024"`
	UserID    uint64    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Token
func (Token) TableName() string {
	return "tokens"
}
