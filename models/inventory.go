package models

import (
	"time"

	"github.com/google/uuid"
)

// Lifespan indicator bands. Fixed thresholds, not configurable.
const (
	LifespanHealthy  = "healthy"
	LifespanWarning  = "warning"
	LifespanCritical = "critical"
)

// ProductType is reference data for inventory items (shampoo, wax, towels...).
// Items point at it by id; the reference is soft and the lifecycles are
// independent.
type ProductType struct {
	ID     int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	NameEn string `gorm:"not null" json:"name_en"`
	NameAr string `json:"name_ar"`
}

type InventoryItem struct {
	ID     int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name          string `json:"name"`
	ProductTypeID *int64 `gorm:"index" json:"product_type_id,omitempty"`

	Quantity int     `gorm:"default:0" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);default:0.0" json:"price"`

	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	LifespanDays *int       `json:"lifespanDays,omitempty"`
}

// RemainingLifespan returns the remaining share of the item's declared
// lifespan as a percentage in [0, 100], assuming linear depletion from the
// purchase date. Nil when the purchase date or lifespan is not set.
func (i *InventoryItem) RemainingLifespan(now time.Time) *float64 {
	if i.PurchaseDate == nil || i.LifespanDays == nil || *i.LifespanDays <= 0 {
		return nil
	}
	daysPassed := now.Sub(*i.PurchaseDate).Hours() / 24
	remaining := 100 - (daysPassed / float64(*i.LifespanDays) * 100)
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// LifespanBand maps a remaining percentage onto the indicator band.
func LifespanBand(remaining float64) string {
	if remaining > 50 {
		return LifespanHealthy
	}
	if remaining > 25 {
		return LifespanWarning
	}
	return LifespanCritical
}
