package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment methods accepted at the counter.
const (
	PaymentCash    = "cash"
	PaymentMachine = "machine"
	PaymentNone    = "none"
)

// ServiceRecord is one completed wash. Records are immutable once created;
// there is no update or delete path for them.
type ServiceRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	ServiceType string `gorm:"not null" json:"serviceType"`
	WaxAddOn    bool   `gorm:"default:false" json:"waxAddOn"`
	CarSize     string `json:"carSize"`

	StaffID     string `json:"staffId"`
	StaffName   string `json:"staffName"`
	StaffNameEn string `json:"staffNameEn"`

	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Commission float64 `gorm:"type:decimal(10,2);default:0.0" json:"commission"`

	PaymentMethod   string `gorm:"type:varchar(10);default:'cash'" json:"paymentMethod"`
	HasCoupon       bool   `gorm:"default:false" json:"hasCoupon"`
	IsPaid          bool   `gorm:"default:true" json:"isPaid"`
	CustomerContact string `json:"customerContact,omitempty"`

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

func (s *ServiceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
