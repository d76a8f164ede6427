package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TailorConnectApp/tailor-marketplace/internal/audit"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/order"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeOrderRepo is an in-memory stand-in for the gorm repository.
type fakeOrderRepo struct {
	mu sync.Mutex

	tailors  map[string]*models.Tailor
	services map[string]*models.Service
	orders   map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		tailors:  make(map[string]*models.Tailor),
		services: make(map[string]*models.Service),
		orders:   make(map[string]*models.Order),
	}
}

var _ domain.Repository = (*fakeOrderRepo)(nil)

func (f *fakeOrderRepo) GetTailorByID(_ context.Context, id string) (*models.Tailor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tailors[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (f *fakeOrderRepo) GetServiceForTailor(_ context.Context, serviceID, tailorID string) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.services[serviceID]
	if !ok || s.TailorID != tailorID || !s.IsActive {
		return nil, errNotFound
	}
	return s, nil
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatusGuarded(
	_ context.Context,
	orderID string,
	from domain.Status,
	to domain.Status,
	now time.Time,
) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok || o.Status != string(from) {
		return 0, nil
	}
	o.Status = string(to)
	o.UpdatedAt = now
	return 1, nil
}

func (f *fakeOrderRepo) MarkOrderPaid(_ context.Context, orderID string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return errNotFound
	}
	o.IsPaid = true
	o.UpdatedAt = now
	return nil
}

// hydrate fills association fields the way the preload chain would,
// leaving anything a test pre-populated (or deliberately blanked on a
// stored row) alone.
func (f *fakeOrderRepo) hydrate(o *models.Order) {
	if o.Customer.ID == "" {
		o.Customer = models.User{ID: o.CustomerID}
	}
	if o.Tailor.ID == "" {
		if t, ok := f.tailors[o.TailorID]; ok {
			o.Tailor = *t
			o.Tailor.User = models.User{ID: t.UserID}
		}
	}
	if o.Service.ID == "" {
		if s, ok := f.services[o.ServiceID]; ok {
			o.Service = *s
		}
	}
}

func (f *fakeOrderRepo) GetOrderDetailed(_ context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *o
	f.hydrate(&cp)
	return &cp, nil
}

func (f *fakeOrderRepo) ListOrdersByCustomer(_ context.Context, customerID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			cp := *o
			f.hydrate(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListOrdersByTailor(_ context.Context, tailorID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.TailorID == tailorID {
			cp := *o
			f.hydrate(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

// seed helpers

func (f *fakeOrderRepo) seedTailor(id string) {
	f.tailors[id] = &models.Tailor{ID: id, UserID: "user-" + id}
}

func (f *fakeOrderRepo) seedService(id, tailorID string, price float64) {
	f.services[id] = &models.Service{
		ID:          id,
		TailorID:    tailorID,
		ServiceType: models.ServiceCustomStitching,
		Price:       price,
		IsActive:    true,
	}
}

func newTestAudit() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
