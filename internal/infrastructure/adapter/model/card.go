package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card represents the database model for cards
type Card struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	Number       string          `gorm:"uniqueIndex;not null;size:19"`
	MaskedNumber string          `gorm:"not null;size:19"`
	OwnerID      uint64          `gorm:"column:user_id;not null;index"`
	Currency     string          `gorm:"not null;size:3"`
	ExpiryDate   time.Time       `gorm:"not null"`
	Active       bool            `gorm:"not null;default:true"`
	Status       string          `gorm:"not null;size:20;index"`
	Balance      decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0;check:chk_cards_balance_non_negative,balance >= 0"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
