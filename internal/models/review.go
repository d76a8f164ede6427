package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// One review per order, enforced by the unique index. Duplicate
	// submissions surface as a conflict, they are never double counted.
	OrderID string `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`

	CustomerID string `gorm:"type:uuid;not null" json:"customer_id"`
	Customer   User   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;" json:"-"`

	TailorID string `gorm:"type:uuid;index;not null" json:"tailor_id"`
	Tailor   Tailor `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
