package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

func TestMarkPaid_OwningTailor(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "in_progress")

	uc := NewMarkPaid(repo, newTestAudit())

	o, err := uc.Execute(context.Background(), "o-1", tailorActor())
	require.NoError(t, err)
	assert.True(t, o.IsPaid)
	// Payment is orthogonal to delivery progress.
	assert.Equal(t, "in_progress", o.Status)

	stored, _ := repo.GetOrderByID(context.Background(), "o-1")
	assert.True(t, stored.IsPaid)
}

func TestMarkPaid_CustomerRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "delivered")

	uc := NewMarkPaid(repo, newTestAudit())

	_, err := uc.Execute(context.Background(), "o-1", customerActor())
	assert.True(t, httperr.IsBusiness(err, "not_order_owner"))
}

func TestMarkPaid_ForeignTailorRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o-1", "ready")

	uc := NewMarkPaid(repo, newTestAudit())

	actor := Actor{UserID: "user-x", Role: models.RoleTailor, TailorID: "tailor-9"}
	_, err := uc.Execute(context.Background(), "o-1", actor)
	assert.True(t, httperr.IsBusiness(err, "not_order_owner"))
}

func TestMarkPaid_MissingOrder(t *testing.T) {
	uc := NewMarkPaid(newFakeOrderRepo(), newTestAudit())

	_, err := uc.Execute(context.Background(), "missing", tailorActor())
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}
