package booking

import (
	"strings"
	"time"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// DefaultPickupTime is used when the form carries a date but no slot.
const DefaultPickupTime = "10:00"

// Form is the user-filled booking form before service resolution.
type Form struct {
	TailorID    string
	ServiceType string
	GarmentType string

	PickupAddress string
	PickupDate    string // YYYY-MM-DD
	PickupTime    string // HH:MM, optional

	SpecialInstructions string
	Measurements        string // existing | new | home-visit
	PaymentMethod       string // online | cod
	ReferenceImages     []string
}

// Validate rejects a malformed form before anything is resolved or
// written. Messages map to coded business errors specific enough for
// the form to highlight the field.
func (f Form) Validate() error {
	if f.TailorID == "" {
		return httperr.ErrBusiness("missing_tailor")
	}
	if !models.IsValidServiceType(f.ServiceType) {
		return httperr.ErrBusiness("invalid_service_type")
	}
	if !models.IsValidGarmentType(f.GarmentType) {
		return httperr.ErrBusiness("invalid_garment_type")
	}
	if strings.TrimSpace(f.PickupAddress) == "" {
		return httperr.ErrBusiness("missing_pickup_address")
	}
	if f.PickupDate == "" {
		return httperr.ErrBusiness("missing_pickup_date")
	}
	switch f.PaymentMethod {
	case "online", "cod":
	default:
		return httperr.ErrBusiness("invalid_payment_method")
	}
	return nil
}

// PickupAt combines the pickup date and time slot into one timestamp
// in the given location, defaulting the slot when none was chosen.
func (f Form) PickupAt(loc *time.Location) (time.Time, error) {
	slot := f.PickupTime
	if slot == "" {
		slot = DefaultPickupTime
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", f.PickupDate+" "+slot, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_pickup_date")
	}
	return t, nil
}
