package models

import (
	"github.com/google/uuid"
)

// ServiceConfig is a per-user service-type entry: the internal key, display
// names in both languages and the default price/commission. The backing key
// is numeric but the API exposes it as a string (migrated-schema shim).
type ServiceConfig struct {
	ID     int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name   string `gorm:"not null" json:"name"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`

	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Commission float64 `gorm:"type:decimal(10,2);default:0.0" json:"commission"`
}
