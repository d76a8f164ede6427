package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

var errConnection = errors.New("driver: bad connection")

type fakeCatalogRepo struct {
	tailors  map[string]*models.Tailor
	services map[string]*models.Service
	reviews  map[string][]models.Review

	// When set, tailor lookups fail with this error instead.
	lookupErr error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		tailors:  make(map[string]*models.Tailor),
		services: make(map[string]*models.Service),
		reviews:  make(map[string][]models.Review),
	}
}

var _ domain.Repository = (*fakeCatalogRepo)(nil)

func (f *fakeCatalogRepo) SearchTailors(_ context.Context, p domain.SearchParams) ([]models.Tailor, error) {
	var out []models.Tailor
	for _, t := range f.tailors {
		if !t.IsVerified {
			continue
		}
		if p.Location != "" && !strings.Contains(strings.ToLower(t.Location), strings.ToLower(p.Location)) {
			continue
		}
		if p.MinRating > 0 && t.Rating < p.MinRating {
			continue
		}
		if p.ServiceType != "" && !f.offers(t.ID, p.ServiceType) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeCatalogRepo) offers(tailorID, serviceType string) bool {
	for _, s := range f.services {
		if s.TailorID == tailorID && s.ServiceType == serviceType && s.IsActive {
			return true
		}
	}
	return false
}

func (f *fakeCatalogRepo) GetTailorByID(_ context.Context, id string) (*models.Tailor, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	t, ok := f.tailors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeCatalogRepo) GetTailorByUserID(_ context.Context, userID string) (*models.Tailor, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, t := range f.tailors {
		if t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogRepo) CreateTailor(_ context.Context, t *models.Tailor) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	f.tailors[t.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) ActiveServicesByTailor(_ context.Context, tailorID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.TailorID == tailorID && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateService(_ context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) DeactivateService(_ context.Context, serviceID, tailorID string) (int64, error) {
	s, ok := f.services[serviceID]
	if !ok || s.TailorID != tailorID || !s.IsActive {
		return 0, nil
	}
	s.IsActive = false
	return 1, nil
}

func (f *fakeCatalogRepo) ListReviewsByTailor(_ context.Context, tailorID string) ([]models.Review, error) {
	return f.reviews[tailorID], nil
}

func (f *fakeCatalogRepo) seedVerifiedTailor(id, location string, rating float64) *models.Tailor {
	t := &models.Tailor{
		ID:         id,
		UserID:     "user-" + id,
		User:       models.User{ID: "user-" + id, Name: "Tailor " + id},
		Location:   location,
		Rating:     rating,
		IsVerified: true,
	}
	f.tailors[id] = t
	return t
}
