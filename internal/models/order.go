package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID string `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   User   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	TailorID string `gorm:"type:uuid;index;not null" json:"tailor_id"`
	Tailor   Tailor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tailor"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE;" json:"service"`

	ServiceType string `gorm:"size:30;not null" json:"service_type"`
	GarmentType string `gorm:"size:30;not null" json:"garment_type"`

	Status string `gorm:"size:30;not null;default:'pending'" json:"status"`

	// Snapshot of the service price at booking time, never recomputed.
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	PickupAddress       string     `gorm:"size:500;not null" json:"pickup_address"`
	PickupDate          *time.Time `json:"pickup_date"`
	DeliveryDate        *time.Time `json:"delivery_date"`
	SpecialInstructions string     `gorm:"size:500" json:"special_instructions"`

	// Opaque serialized measurements payload, see domain/booking.
	Measurements    string   `gorm:"type:text" json:"measurements"`
	ReferenceImages []string `gorm:"serializer:json" json:"reference_images"`

	PaymentMethod string `gorm:"size:30;not null" json:"payment_method"`
	IsPaid        bool   `gorm:"default:false" json:"is_paid"`

	Review *Review `gorm:"foreignKey:OrderID" json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
