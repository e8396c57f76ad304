package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a running cost entry. The date is always stamped by the server
// at creation time and is not editable.
type Expense struct {
	ID     int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
}
