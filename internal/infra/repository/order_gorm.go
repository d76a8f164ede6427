package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Tailor / Service lookups
// --------------------------------------------------

func (r *OrderGormRepository) GetTailorByID(
	ctx context.Context,
	id string,
) (*models.Tailor, error) {

	var tailor models.Tailor
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&tailor).Error; err != nil {
		return nil, err
	}
	return &tailor, nil
}

func (r *OrderGormRepository) GetServiceForTailor(
	ctx context.Context,
	serviceID string,
	tailorID string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tailor_id = ? AND is_active = true", serviceID, tailorID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Order (create)
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// --------------------------------------------------
// Order (state change)
// --------------------------------------------------

func (r *OrderGormRepository) GetOrderByID(
	ctx context.Context,
	id string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Guarded conditional update: the WHERE clause pins the expected
// status so two racing updates cannot both apply.
func (r *OrderGormRepository) UpdateStatusGuarded(
	ctx context.Context,
	orderID string,
	from domain.Status,
	to domain.Status,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": now,
		})

	return res.RowsAffected, res.Error
}

func (r *OrderGormRepository) MarkOrderPaid(
	ctx context.Context,
	orderID string,
	now time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"is_paid":    true,
			"updated_at": now,
		}).Error
}

// --------------------------------------------------
// Order (assembled views)
// --------------------------------------------------

func (r *OrderGormRepository) detailed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Tailor").
		Preload("Tailor.User").
		Preload("Service").
		Preload("Review")
}

func (r *OrderGormRepository) GetOrderDetailed(
	ctx context.Context,
	id string,
) (*models.Order, error) {

	var o models.Order
	if err := r.detailed(ctx).
		Where("id = ?", id).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrdersByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.detailed(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersByTailor(
	ctx context.Context,
	tailorID string,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.detailed(ctx).
		Where("tailor_id = ?", tailorID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
