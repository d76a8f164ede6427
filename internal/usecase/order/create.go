package order

import (
	"context"
	"strings"
	"time"

	"github.com/TailorConnectApp/tailor-marketplace/internal/audit"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	"github.com/TailorConnectApp/tailor-marketplace/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	// Taken from the authenticated identity, never from the client body.
	CustomerID string

	TailorID  string
	ServiceID string

	ServiceType string
	GarmentType string

	// Resolved by the booking workflow from the service's current
	// price. Not re-derived here.
	TotalAmount float64

	PickupAddress       string
	PickupDate          *time.Time
	SpecialInstructions string

	Measurements    string
	ReferenceImages []string
	PaymentMethod   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if in.CustomerID == "" {
		return nil, httperr.ErrBusiness("authentication_required")
	}
	if !models.IsValidServiceType(in.ServiceType) {
		return nil, httperr.ErrBusiness("invalid_service_type")
	}
	if !models.IsValidGarmentType(in.GarmentType) {
		return nil, httperr.ErrBusiness("invalid_garment_type")
	}
	if strings.TrimSpace(in.PickupAddress) == "" {
		return nil, httperr.ErrBusiness("missing_pickup_address")
	}
	if in.PaymentMethod == "" {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	if _, err := uc.repo.GetTailorByID(ctx, in.TailorID); err != nil {
		return nil, httperr.ErrBusiness("tailor_not_found")
	}

	// The service must exist, be active and belong to the chosen
	// tailor. Price consistency is the booking workflow's job.
	if _, err := uc.repo.GetServiceForTailor(ctx, in.ServiceID, in.TailorID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	now := timezone.Now()

	o := &models.Order{
		CustomerID:          in.CustomerID,
		TailorID:            in.TailorID,
		ServiceID:           in.ServiceID,
		ServiceType:         in.ServiceType,
		GarmentType:         in.GarmentType,
		Status:              string(domain.InitialStatus()),
		TotalAmount:         in.TotalAmount,
		PickupAddress:       in.PickupAddress,
		PickupDate:          in.PickupDate,
		SpecialInstructions: in.SpecialInstructions,
		Measurements:        in.Measurements,
		ReferenceImages:     in.ReferenceImages,
		PaymentMethod:       in.PaymentMethod,
		IsPaid:              false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &o.CustomerID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
