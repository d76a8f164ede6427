package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

func seedOrder(repo *fakeOrderRepo, id, status string) *models.Order {
	o := &models.Order{
		ID:         id,
		CustomerID: "cust-1",
		TailorID:   "tailor-1",
		ServiceID:  "svc-1",
		Status:     status,
	}
	repo.orders[id] = o
	return o
}

func tailorActor() Actor {
	return Actor{UserID: "user-tailor-1", Role: models.RoleTailor, TailorID: "tailor-1"}
}

func customerActor() Actor {
	return Actor{UserID: "cust-1", Role: models.RoleCustomer}
}

func TestUpdateStatus_TailorMovesOneStepForward(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "pending")

	uc := NewUpdateStatus(repo, newTestAudit())

	o, err := uc.Execute(context.Background(), "o-1", "confirmed", tailorActor())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", o.Status)

	stored, _ := repo.GetOrderByID(context.Background(), "o-1")
	assert.Equal(t, "confirmed", stored.Status)
}

func TestUpdateStatus_SkippingAStepRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "pending")

	uc := NewUpdateStatus(repo, newTestAudit())

	_, err := uc.Execute(context.Background(), "o-1", "in_progress", tailorActor())
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	stored, _ := repo.GetOrderByID(context.Background(), "o-1")
	assert.Equal(t, "pending", stored.Status)
}

func TestUpdateStatus_TerminalOrderRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "delivered")

	uc := NewUpdateStatus(repo, newTestAudit())

	_, err := uc.Execute(context.Background(), "o-1", "cancelled", tailorActor())
	assert.True(t, httperr.IsBusiness(err, "order_terminal"))
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "pending")

	uc := NewUpdateStatus(repo, newTestAudit())

	_, err := uc.Execute(context.Background(), "o-1", "shipped", tailorActor())
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	uc := NewUpdateStatus(newFakeOrderRepo(), newTestAudit())

	_, err := uc.Execute(context.Background(), "missing", "confirmed", tailorActor())
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestUpdateStatus_ForeignTailorRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "pending")

	uc := NewUpdateStatus(repo, newTestAudit())

	actor := Actor{UserID: "user-x", Role: models.RoleTailor, TailorID: "tailor-2"}
	_, err := uc.Execute(context.Background(), "o-1", "confirmed", actor)
	assert.True(t, httperr.IsBusiness(err, "not_order_owner"))
}

func TestUpdateStatus_CustomerMayCancelOwnOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "confirmed")

	uc := NewUpdateStatus(repo, newTestAudit())

	o, err := uc.Execute(context.Background(), "o-1", "cancelled", customerActor())
	require.NoError(t, err)
	assert.Equal(t, "cancelled", o.Status)
}

func TestUpdateStatus_CustomerCannotAdvanceOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "pending")

	uc := NewUpdateStatus(repo, newTestAudit())

	_, err := uc.Execute(context.Background(), "o-1", "confirmed", customerActor())
	assert.True(t, httperr.IsBusiness(err, "not_order_owner"))
}

func TestUpdateStatus_CustomerCannotCancelForeignOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "pending")

	uc := NewUpdateStatus(repo, newTestAudit())

	actor := Actor{UserID: "cust-2", Role: models.RoleCustomer}
	_, err := uc.Execute(context.Background(), "o-1", "cancelled", actor)
	assert.True(t, httperr.IsBusiness(err, "not_order_owner"))
}

// staleReadRepo serves reads from a frozen snapshot while writes hit
// the live store, reproducing a writer landing between read and write.
type staleReadRepo struct {
	*fakeOrderRepo
	snapshot models.Order
}

func (s *staleReadRepo) GetOrderByID(context.Context, string) (*models.Order, error) {
	cp := s.snapshot
	return &cp, nil
}

func TestUpdateStatus_ConcurrentWriterSurfacesConflict(t *testing.T) {
	inner := newFakeOrderRepo()
	seedOrder(inner, "o-1", "pending")
	repo := &staleReadRepo{fakeOrderRepo: inner, snapshot: *inner.orders["o-1"]}

	uc := NewUpdateStatus(repo, newTestAudit())

	// Another writer moves the row after our snapshot was taken.
	affected, err := inner.UpdateStatusGuarded(
		context.Background(), "o-1",
		domain.StatusPending, domain.StatusConfirmed,
		inner.orders["o-1"].UpdatedAt,
	)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	// The transition validated against the stale read must not apply.
	_, err = uc.Execute(context.Background(), "o-1", "confirmed", tailorActor())
	assert.True(t, httperr.IsBusiness(err, "status_conflict"))

	stored, _ := inner.GetOrderByID(context.Background(), "o-1")
	assert.Equal(t, "confirmed", stored.Status)
}
