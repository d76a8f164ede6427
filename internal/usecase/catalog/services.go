package catalog

import (
	"context"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

type Services struct {
	repo domain.Repository
}

func NewServices(repo domain.Repository) *Services {
	return &Services{repo: repo}
}

func (uc *Services) ListActive(
	ctx context.Context,
	tailorID string,
) ([]models.Service, error) {
	return uc.repo.ActiveServicesByTailor(ctx, tailorID)
}

type CreateServiceInput struct {
	// Resolved from the authenticated tailor, not client-supplied.
	TailorID string

	ServiceType  string
	GarmentTypes []string
	Price        float64
	DeliveryDays int
	Description  string
}

func (uc *Services) Create(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	if !models.IsValidServiceType(in.ServiceType) {
		return nil, httperr.ErrBusiness("invalid_service_type")
	}
	for _, gt := range in.GarmentTypes {
		if !models.IsValidGarmentType(gt) {
			return nil, httperr.ErrBusiness("invalid_garment_type")
		}
	}
	if in.Price <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if in.DeliveryDays <= 0 {
		return nil, httperr.ErrBusiness("invalid_delivery_days")
	}

	s := &models.Service{
		TailorID:     in.TailorID,
		ServiceType:  in.ServiceType,
		GarmentTypes: in.GarmentTypes,
		Price:        in.Price,
		DeliveryDays: in.DeliveryDays,
		Description:  in.Description,
		IsActive:     true,
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Deactivate soft-deletes a service the tailor owns. Existing orders
// keep their reference; the service just stops being bookable.
func (uc *Services) Deactivate(
	ctx context.Context,
	serviceID string,
	tailorID string,
) error {

	affected, err := uc.repo.DeactivateService(ctx, serviceID, tailorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return httperr.ErrBusiness("service_not_found")
	}
	return nil
}

func (uc *Services) ListReviews(
	ctx context.Context,
	tailorID string,
) ([]models.Review, error) {
	return uc.repo.ListReviewsByTailor(ctx, tailorID)
}
