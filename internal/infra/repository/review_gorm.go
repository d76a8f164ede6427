package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/review"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

const pgUniqueViolation = "23505"

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetOrderByID(
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

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rev *models.Review,
) error {

	err := r.db.WithContext(ctx).Create(rev).Error
	if err == nil {
		return nil
	}

	// The unique index on order_id makes a second review for the same
	// order a constraint violation rather than a double count.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return httperr.ErrBusiness("review_already_exists")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("review_already_exists")
	}

	return err
}

func (r *ReviewGormRepository) ListReviewsByTailor(
	ctx context.Context,
	tailorID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("tailor_id = ?", tailorID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) UpdateTailorAggregate(
	ctx context.Context,
	tailorID string,
	rating float64,
	totalReviews int,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Tailor{}).
		Where("id = ?", tailorID).
		Updates(map[string]any{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
