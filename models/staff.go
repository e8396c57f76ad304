package models

import (
	"github.com/google/uuid"
)

// Staff is a washer. Service records reference staff by id and name only;
// deleting a staff member leaves past records untouched.
type Staff struct {
	ID     int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name   string `gorm:"not null" json:"name"`
	NameEn string `json:"nameEn"`
}
