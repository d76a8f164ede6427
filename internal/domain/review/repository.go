package review

import (
	"context"

	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

type Repository interface {
	GetOrderByID(
		ctx context.Context,
		id string,
	) (*models.Order, error)

	// CreateReview persists the row. A duplicate order reference must
	// surface as the business error "review_already_exists".
	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	ListReviewsByTailor(
		ctx context.Context,
		tailorID string,
	) ([]models.Review, error)

	// UpdateTailorAggregate writes the derived rating state. No other
	// code path may touch these two columns.
	UpdateTailorAggregate(
		ctx context.Context,
		tailorID string,
		rating float64,
		totalReviews int,
	) error
}
