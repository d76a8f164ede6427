package order

import (
	"time"

	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an order to the target status after validating the
// state machine. Only status and updated_at change; nothing cascades.
func Transition(o *models.Order, to Status, now time.Time) error {
	if err := CanTransition(Status(o.Status), to); err != nil {
		return err
	}

	o.Status = string(to)
	o.UpdatedAt = now
	return nil
}

// MarkPaid flips the payment flag. There is no gateway integration;
// the flag records an out-of-band settlement.
func MarkPaid(o *models.Order, now time.Time) {
	o.IsPaid = true
	o.UpdatedAt = now
}
