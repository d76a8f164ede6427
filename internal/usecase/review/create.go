package review

import (
	"context"
	"math"

	"github.com/TailorConnectApp/tailor-marketplace/internal/audit"
	"github.com/TailorConnectApp/tailor-marketplace/internal/cache"
	domainOrder "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/review"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	// From the authenticated identity.
	CustomerID string

	OrderID  string
	TailorID string

	Rating  int
	Comment string
}

// ======================================================
// USE CASE
// ======================================================

// CreateReview persists a review and recomputes the tailor's derived
// rating state. Recomputation for a single tailor is serialized so
// concurrent submissions cannot produce a lost update.
type CreateReview struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	searchCache *cache.SearchCache
	tailorLocks *keyedMutex
}

func NewCreateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
	searchCache *cache.SearchCache,
) *CreateReview {
	return &CreateReview{
		repo:        repo,
		audit:       audit,
		searchCache: searchCache,
		tailorLocks: newKeyedMutex(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.CustomerID == "" {
		return nil, httperr.ErrBusiness("authentication_required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	o, err := uc.repo.GetOrderByID(ctx, in.OrderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}
	if o.CustomerID != in.CustomerID {
		return nil, httperr.ErrBusiness("not_order_owner")
	}
	if o.TailorID != in.TailorID {
		return nil, httperr.ErrBusiness("tailor_mismatch")
	}
	if err := domainOrder.CanReview(domainOrder.Status(o.Status)); err != nil {
		return nil, err
	}

	lock := uc.tailorLocks.get(in.TailorID)
	lock.Lock()
	defer lock.Unlock()

	rev := &models.Review{
		OrderID:    in.OrderID,
		CustomerID: in.CustomerID,
		TailorID:   in.TailorID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rev); err != nil {
		return nil, err
	}

	if err := uc.recompute(ctx, in.TailorID); err != nil {
		return nil, err
	}

	uc.searchCache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rev.ID,
	})

	return rev, nil
}

// recompute derives the aggregate from the full review set: the mean
// of all ratings and their count, exact, not incremental.
func (uc *CreateReview) recompute(ctx context.Context, tailorID string) error {
	reviews, err := uc.repo.ListReviewsByTailor(ctx, tailorID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	mean := float64(sum) / float64(len(reviews))
	mean = math.Round(mean*100) / 100

	return uc.repo.UpdateTailorAggregate(ctx, tailorID, mean, len(reviews))
}
