package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tailor struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	BusinessName    string   `gorm:"size:100" json:"business_name"`
	Specializations []string `gorm:"serializer:json" json:"specializations"`
	Location        string   `gorm:"size:100;not null" json:"location"`
	Address         string   `gorm:"size:255" json:"address"`

	// Derived state. Written only by the review aggregator, never by
	// profile updates.
	Rating       float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	// Unverified tailors never appear in public search.
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	AvgDeliveryDays int     `gorm:"default:3" json:"avg_delivery_days"`
	StartingPrice   float64 `gorm:"type:decimal(10,2)" json:"starting_price"`
	Description     string  `gorm:"size:500" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *Tailor) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
