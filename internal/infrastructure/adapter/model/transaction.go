package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transfer attempts
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	FromCardID  uint64          `gorm:"not null;index"`
	ToCardID    uint64          `gorm:"not null;index"`
	Description string          `gorm:"size:255"`
	Status      string          `gorm:"not null;size:20;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	ProcessedAt *time.Time

	FromCard Card `gorm:"foreignKey:FromCardID;references:ID;constraint:OnDelete:RESTRICT"`
	ToCard   Card `gorm:"foreignKey:ToCardID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
