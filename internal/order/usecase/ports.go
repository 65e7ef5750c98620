package usecase

import (
	"context"

	"sebet/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string, fetch int64) ([]domain.Order, error)
	ListAll(ctx context.Context, fetch int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus) error
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Notifier delivers order summaries to the operator channel. Implementations
// never error; a false result is logged and otherwise ignored.
type Notifier interface {
	SendOrderCreated(ctx context.Context, order domain.Order) bool
	SendStatusUpdate(ctx context.Context, order domain.Order, previous domain.OrderStatus) bool
}
