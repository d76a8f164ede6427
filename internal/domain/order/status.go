package order

import "github.com/TailorConnectApp/tailor-marketplace/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending         Status = "pending"
	StatusConfirmed       Status = "confirmed"
	StatusPickupScheduled Status = "pickup_scheduled"
	StatusInProgress      Status = "in_progress"
	StatusReady           Status = "ready"
	StatusOutForDelivery  Status = "out_for_delivery"
	StatusDelivered       Status = "delivered"
	StatusCancelled       Status = "cancelled"
)

// Forward order of the delivery pipeline. Cancelled sits outside the
// chain and is reachable from any non-terminal status.
var forward = map[Status]Status{
	StatusPending:         StatusConfirmed,
	StatusConfirmed:       StatusPickupScheduled,
	StatusPickupScheduled: StatusInProgress,
	StatusInProgress:      StatusReady,
	StatusReady:           StatusOutForDelivery,
	StatusOutForDelivery:  StatusDelivered,
}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusConfirmed, StatusPickupScheduled,
		StatusInProgress, StatusReady, StatusOutForDelivery,
		StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition enforces the lifecycle: one forward step at a time, no
// skipping, no backward moves, and nothing leaves a terminal status.
func CanTransition(from, to Status) error {
	if IsTerminal(from) {
		return httperr.ErrBusiness("order_terminal")
	}
	if to == StatusCancelled {
		return nil
	}
	if forward[from] == to {
		return nil
	}
	return httperr.ErrBusiness("invalid_transition")
}

// CanReview defines when an order accepts a review.
func CanReview(current Status) error {
	if current != StatusDelivered {
		return httperr.ErrBusiness("order_not_delivered")
	}
	return nil
}
