package catalog

import (
	"context"
	"errors"

	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// ErrNotFound marks a lookup that matched no row. Callers branch on it
// to tell "no such profile" apart from a failed lookup.
var ErrNotFound = errors.New("catalog: not found")

type SearchParams struct {
	// Case-insensitive substring match on the tailor's location.
	Location string
	// Restricts to tailors offering an active service of this type.
	ServiceType string
	// Inclusive lower bound on the stored aggregate rating.
	MinRating float64
}

// HasFilters reports whether any search filter is set. Unfiltered
// searches are the cacheable hot path.
func (p SearchParams) HasFilters() bool {
	return p.Location != "" || p.ServiceType != "" || p.MinRating > 0
}

type Repository interface {
	// -------- Tailor --------
	SearchTailors(
		ctx context.Context,
		params SearchParams,
	) ([]models.Tailor, error)

	// GetTailorByID and GetTailorByUserID return ErrNotFound when no
	// row matches; any other error is an infrastructure failure.
	GetTailorByID(
		ctx context.Context,
		id string,
	) (*models.Tailor, error)

	GetTailorByUserID(
		ctx context.Context,
		userID string,
	) (*models.Tailor, error)

	CreateTailor(
		ctx context.Context,
		t *models.Tailor,
	) error

	// -------- Service --------
	ActiveServicesByTailor(
		ctx context.Context,
		tailorID string,
	) ([]models.Service, error)

	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	// DeactivateService soft-deletes; it returns the number of rows
	// touched so callers can distinguish not-found.
	DeactivateService(
		ctx context.Context,
		serviceID string,
		tailorID string,
	) (int64, error)

	// -------- Review (read side) --------
	ListReviewsByTailor(
		ctx context.Context,
		tailorID string,
	) ([]models.Review, error)
}
