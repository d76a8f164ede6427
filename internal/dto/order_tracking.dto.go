package dto

import (
	"time"

	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// OrderTrackingDTO is the compact shape the tracking timeline renders
// from; the full assembled view is overkill there.
type OrderTrackingDTO struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	ServiceType  string     `json:"service_type"`
	GarmentType  string     `json:"garment_type"`
	TailorName   string     `json:"tailor_name"`
	TotalAmount  float64    `json:"total_amount"`
	IsPaid       bool       `json:"is_paid"`
	PickupDate   *time.Time `json:"pickup_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func OrderTrackingFromModel(o *models.Order) OrderTrackingDTO {
	name := o.Tailor.BusinessName
	if name == "" {
		name = o.Tailor.User.Name
	}

	return OrderTrackingDTO{
		ID:           o.ID,
		Status:       o.Status,
		ServiceType:  o.ServiceType,
		GarmentType:  o.GarmentType,
		TailorName:   name,
		TotalAmount:  o.TotalAmount,
		IsPaid:       o.IsPaid,
		PickupDate:   o.PickupDate,
		DeliveryDate: o.DeliveryDate,
		UpdatedAt:    o.UpdatedAt,
	}
}
