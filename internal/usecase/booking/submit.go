package booking

import (
	"context"
	"time"

	domainBooking "github.com/TailorConnectApp/tailor-marketplace/internal/domain/booking"
	domainCatalog "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	ucOrder "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/order"
)

// ======================================================
// USE CASE
// ======================================================

// Submit turns a validated booking form into an order-creation
// request: it resolves the chosen service type against the tailor's
// active services and carries that service's price verbatim.
type Submit struct {
	catalog     domainCatalog.Repository
	createOrder *ucOrder.CreateOrder
	loc         *time.Location
}

func NewSubmit(
	catalog domainCatalog.Repository,
	createOrder *ucOrder.CreateOrder,
	loc *time.Location,
) *Submit {
	return &Submit{
		catalog:     catalog,
		createOrder: createOrder,
		loc:         loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Submit) Execute(
	ctx context.Context,
	customerID string,
	form domainBooking.Form,
) (*models.Order, error) {

	if customerID == "" {
		return nil, httperr.ErrBusiness("authentication_required")
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	// Resolution is an exact service-type match against the tailor's
	// active services. No match means no guessed price and no write.
	services, err := uc.catalog.ActiveServicesByTailor(ctx, form.TailorID)
	if err != nil {
		return nil, err
	}

	var selected *models.Service
	for i := range services {
		if services[i].ServiceType == form.ServiceType {
			selected = &services[i]
			break
		}
	}
	if selected == nil {
		return nil, httperr.ErrBusiness("service_not_available")
	}

	pickupAt, err := form.PickupAt(uc.loc)
	if err != nil {
		return nil, err
	}

	measurements, err := domainBooking.EncodeMeasurements(form.Measurements)
	if err != nil {
		return nil, err
	}

	return uc.createOrder.Execute(ctx, ucOrder.CreateOrderInput{
		CustomerID:          customerID,
		TailorID:            form.TailorID,
		ServiceID:           selected.ID,
		ServiceType:         form.ServiceType,
		GarmentType:         form.GarmentType,
		TotalAmount:         selected.Price,
		PickupAddress:       form.PickupAddress,
		PickupDate:          &pickupAt,
		SpecialInstructions: form.SpecialInstructions,
		Measurements:        measurements,
		ReferenceImages:     form.ReferenceImages,
		PaymentMethod:       form.PaymentMethod,
	})
}
