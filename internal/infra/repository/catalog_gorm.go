package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Tailor
// --------------------------------------------------

func (r *CatalogGormRepository) SearchTailors(
	ctx context.Context,
	params domain.SearchParams,
) ([]models.Tailor, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Where("is_verified = true")

	if params.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(params.Location)+"%")
	}

	if params.MinRating > 0 {
		q = q.Where("rating >= ?", params.MinRating)
	}

	if params.ServiceType != "" {
		q = q.Where(
			"id IN (?)",
			r.db.Model(&models.Service{}).
				Select("tailor_id").
				Where("service_type = ? AND is_active = true", params.ServiceType),
		)
	}

	var tailors []models.Tailor
	if err := q.Order("rating DESC").Find(&tailors).Error; err != nil {
		return nil, err
	}
	return tailors, nil
}

func (r *CatalogGormRepository) GetTailorByID(
	ctx context.Context,
	id string,
) (*models.Tailor, error) {

	var tailor models.Tailor
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&tailor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tailor, nil
}

func (r *CatalogGormRepository) GetTailorByUserID(
	ctx context.Context,
	userID string,
) (*models.Tailor, error) {

	var tailor models.Tailor
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&tailor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tailor, nil
}

func (r *CatalogGormRepository) CreateTailor(
	ctx context.Context,
	t *models.Tailor,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ActiveServicesByTailor(
	ctx context.Context,
	tailorID string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("tailor_id = ? AND is_active = true", tailorID).
		Order("service_type ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) DeactivateService(
	ctx context.Context,
	serviceID string,
	tailorID string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ? AND tailor_id = ?", serviceID, tailorID).
		Update("is_active", false)

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Review (read side)
// --------------------------------------------------

func (r *CatalogGormRepository) ListReviewsByTailor(
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

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
