package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServiceCustomStitching = "custom_stitching"
	ServiceAlterations     = "alterations"
	ServiceRepairs         = "repairs"
	ServiceUniforms        = "uniforms"
)

var ServiceTypes = []string{
	ServiceCustomStitching,
	ServiceAlterations,
	ServiceRepairs,
	ServiceUniforms,
}

var GarmentTypes = []string{
	"shirt", "pants", "suit", "dress", "blouse",
	"lehenga", "saree", "sherwani", "kurta", "other",
}

type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	TailorID string `gorm:"type:uuid;index;not null" json:"tailor_id"`
	Tailor   Tailor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceType  string   `gorm:"size:30;not null" json:"service_type"`
	GarmentTypes []string `gorm:"serializer:json" json:"garment_types"`

	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DeliveryDays int     `gorm:"not null" json:"delivery_days"`
	Description  string  `gorm:"size:255" json:"description"`

	// Soft delete: inactive services are excluded from booking but kept
	// for orders that reference them.
	IsActive bool `gorm:"default:true" json:"is_active"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func IsValidServiceType(t string) bool {
	for _, st := range ServiceTypes {
		if st == t {
			return true
		}
	}
	return false
}

func IsValidGarmentType(t string) bool {
	for _, gt := range GarmentTypes {
		if gt == t {
			return true
		}
	}
	return false
}
