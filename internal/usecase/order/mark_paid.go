package order

import (
	"context"

	"github.com/TailorConnectApp/tailor-marketplace/internal/audit"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	"github.com/TailorConnectApp/tailor-marketplace/internal/timezone"
)

type MarkPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		audit: audit,
	}
}

// Execute records an out-of-band settlement on the order. Only the
// owning tailor can flag it, and delivery status is untouched.
func (uc *MarkPaid) Execute(
	ctx context.Context,
	orderID string,
	actor Actor,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if actor.Role != models.RoleTailor || actor.TailorID != o.TailorID {
		return nil, httperr.ErrBusiness("not_order_owner")
	}

	now := timezone.Now()
	if err := uc.repo.MarkOrderPaid(ctx, o.ID, now); err != nil {
		return nil, err
	}

	domain.MarkPaid(o, now)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   "order_marked_paid",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
