package catalog

import (
	"context"
	"errors"
	"strings"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// Tailors covers profile lookups and creation. Lookups distinguish
// "no profile yet" (a legitimate outcome) from lookup failures.
type Tailors struct {
	repo domain.Repository
}

func NewTailors(repo domain.Repository) *Tailors {
	return &Tailors{repo: repo}
}

func (uc *Tailors) Get(
	ctx context.Context,
	tailorID string,
) (*models.Tailor, error) {

	t, err := uc.repo.GetTailorByID(ctx, tailorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("tailor_not_found")
		}
		return nil, err
	}
	if t.User.ID == "" {
		return nil, httperr.ErrBusiness("tailor_not_found")
	}
	return t, nil
}

// GetByUserID returns (nil, nil) when the user simply has no tailor
// profile yet. Infrastructure failures are propagated, never folded
// into the no-profile outcome.
func (uc *Tailors) GetByUserID(
	ctx context.Context,
	userID string,
) (*models.Tailor, error) {

	t, err := uc.repo.GetTailorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

type CreateProfileInput struct {
	UserID          string
	BusinessName    string
	Specializations []string
	Location        string
	Address         string
	AvgDeliveryDays int
	StartingPrice   float64
	Description     string
}

func (uc *Tailors) CreateProfile(
	ctx context.Context,
	in CreateProfileInput,
) (*models.Tailor, error) {

	if strings.TrimSpace(in.Location) == "" {
		return nil, httperr.ErrBusiness("missing_location")
	}

	existing, err := uc.repo.GetTailorByUserID(ctx, in.UserID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("tailor_profile_exists")
	}

	t := &models.Tailor{
		UserID:          in.UserID,
		BusinessName:    in.BusinessName,
		Specializations: in.Specializations,
		Location:        in.Location,
		Address:         in.Address,
		AvgDeliveryDays: in.AvgDeliveryDays,
		StartingPrice:   in.StartingPrice,
		Description:     in.Description,
	}
	if t.AvgDeliveryDays <= 0 {
		t.AvgDeliveryDays = 3
	}

	if err := uc.repo.CreateTailor(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
