package order

import (
	"context"

	"github.com/TailorConnectApp/tailor-marketplace/internal/audit"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	"github.com/TailorConnectApp/tailor-marketplace/internal/timezone"
)

// Actor identifies who is asking for the transition.
type Actor struct {
	UserID string
	Role   string
	// Tailor profile id when Role is tailor, empty otherwise.
	TailorID string
}

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	orderID string,
	newStatus string,
	actor Actor,
) (*models.Order, error) {

	to, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	switch actor.Role {
	case models.RoleTailor:
		if actor.TailorID == "" || actor.TailorID != o.TailorID {
			return nil, httperr.ErrBusiness("not_order_owner")
		}
	case models.RoleCustomer:
		// Customers may only cancel their own orders.
		if actor.UserID != o.CustomerID {
			return nil, httperr.ErrBusiness("not_order_owner")
		}
		if to != domain.StatusCancelled {
			return nil, httperr.ErrBusiness("not_order_owner")
		}
	default:
		return nil, httperr.ErrBusiness("not_order_owner")
	}

	from := domain.Status(o.Status)
	if err := domain.CanTransition(from, to); err != nil {
		return nil, err
	}

	now := timezone.Now()

	// Guarded write: if the row moved on since we read it, nothing is
	// applied and the caller gets a conflict instead of a lost update.
	affected, err := uc.repo.UpdateStatusGuarded(ctx, o.ID, from, to, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, httperr.ErrBusiness("status_conflict")
	}

	o.Status = string(to)
	o.UpdatedAt = now

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   "order_status_updated",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	return o, nil
}
