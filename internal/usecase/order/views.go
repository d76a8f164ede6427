package order

import (
	"context"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// Views assembles the denormalized order-with-details read model.
type Views struct {
	repo domain.Repository
}

func NewViews(repo domain.Repository) *Views {
	return &Views{repo: repo}
}

// viewComplete reports whether every required join target resolved.
// A view missing its customer, tailor, tailor's user or service is
// withheld entirely rather than surfaced with holes; an absent review
// is a valid state, not a gap.
func viewComplete(o *models.Order) bool {
	return o.Customer.ID != "" &&
		o.Tailor.ID != "" &&
		o.Tailor.User.ID != "" &&
		o.Service.ID != ""
}

func (uc *Views) Get(
	ctx context.Context,
	orderID string,
	actor Actor,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderDetailed(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}
	if !viewComplete(o) {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if actor.UserID != o.CustomerID && actor.TailorID != o.TailorID {
		return nil, httperr.ErrBusiness("not_order_owner")
	}

	return o, nil
}

func (uc *Views) ListByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Order, error) {

	orders, err := uc.repo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dropIncomplete(orders), nil
}

func (uc *Views) ListByTailor(
	ctx context.Context,
	tailorID string,
) ([]models.Order, error) {

	orders, err := uc.repo.ListOrdersByTailor(ctx, tailorID)
	if err != nil {
		return nil, err
	}
	return dropIncomplete(orders), nil
}

func dropIncomplete(orders []models.Order) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for i := range orders {
		if viewComplete(&orders[i]) {
			out = append(out, orders[i])
		}
	}
	return out
}
