package usecase

import (
	"context"
	"sync"

	"sebet/internal/domain"
)

// Mock implementations shared by the usecase tests.

type mockOrderRepository struct {
	CreateFunc       func(ctx context.Context, order *domain.Order) (string, error)
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Order, error)
	ListByUserFunc   func(ctx context.Context, userID string, fetch int64) ([]domain.Order, error)
	ListAllFunc      func(ctx context.Context, fetch int64) ([]domain.Order, error)
	UpdateStatusFunc func(ctx context.Context, id string, from, to domain.OrderStatus) error
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	return m.CreateFunc(ctx, order)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID string, fetch int64) ([]domain.Order, error) {
	return m.ListByUserFunc(ctx, userID, fetch)
}

func (m *mockOrderRepository) ListAll(ctx context.Context, fetch int64) ([]domain.Order, error) {
	return m.ListAllFunc(ctx, fetch)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error {
	return m.UpdateStatusFunc(ctx, id, from, to)
}

type mockProductRepository struct {
	FindByIDsFunc func(ctx context.Context, ids []string) ([]domain.Product, error)
}

func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	return m.FindByIDsFunc(ctx, ids)
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return m.FindByIDFunc(ctx, id)
}

// mockNotifier records dispatches and signals them so tests can wait for
// the detached goroutine.
type mockNotifier struct {
	mu       sync.Mutex
	created  []domain.Order
	updated  []domain.Order
	signaled chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{signaled: make(chan struct{}, 8)}
}

func (m *mockNotifier) SendOrderCreated(_ context.Context, order domain.Order) bool {
	m.mu.Lock()
	m.created = append(m.created, order)
	m.mu.Unlock()
	m.signaled <- struct{}{}
	return true
}

func (m *mockNotifier) SendStatusUpdate(_ context.Context, order domain.Order, _ domain.OrderStatus) bool {
	m.mu.Lock()
	m.updated = append(m.updated, order)
	m.mu.Unlock()
	m.signaled <- struct{}{}
	return true
}

func (m *mockNotifier) createdCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}
