package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertLog records one inventory alert sent to an owner.
type AlertLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	InventoryItemID int64     `gorm:"index" json:"inventoryItemId,string"`

	Message      string `gorm:"type:text" json:"message"`
	Status       string `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string `gorm:"type:text" json:"errorMessage"`
	Channel      string `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms

	SentAt time.Time `json:"sentAt"`

	gorm.Model
}

func (a *AlertLog) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}
