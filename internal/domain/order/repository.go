package order

import (
	"context"
	"time"

	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

type Repository interface {
	// -------- Tailor / Service lookups --------
	GetTailorByID(
		ctx context.Context,
		id string,
	) (*models.Tailor, error)

	GetServiceForTailor(
		ctx context.Context,
		serviceID string,
		tailorID string,
	) (*models.Service, error)

	// -------- Order (create) --------
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Order (state change) --------
	GetOrderByID(
		ctx context.Context,
		id string,
	) (*models.Order, error)

	// UpdateStatusGuarded applies the transition only when the row still
	// holds the expected status. Zero affected rows means a concurrent
	// writer got there first.
	UpdateStatusGuarded(
		ctx context.Context,
		orderID string,
		from Status,
		to Status,
		now time.Time,
	) (int64, error)

	MarkOrderPaid(
		ctx context.Context,
		orderID string,
		now time.Time,
	) error

	// -------- Order (assembled views) --------
	GetOrderDetailed(
		ctx context.Context,
		id string,
	) (*models.Order, error)

	ListOrdersByCustomer(
		ctx context.Context,
		customerID string,
	) ([]models.Order, error)

	ListOrdersByTailor(
		ctx context.Context,
		tailorID string,
	) ([]models.Order, error)
}
