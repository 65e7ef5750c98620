package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

var testCaller = auth.Identity{UID: "user-1", Email: "user@example.com"}

func catalogWith(products ...domain.Product) *mockProductRepository {
	return &mockProductRepository{
		FindByIDsFunc: func(ctx context.Context, ids []string) ([]domain.Product, error) {
			return products, nil
		},
	}
}

func TestCreate_PersistsRequestedOrder(t *testing.T) {
	discount := 4.00
	products := catalogWith(
		domain.Product{ID: "p1", Name: domain.LocalizedText{"en": "Key"}, Price: 5.00, DiscountPrice: &discount},
		domain.Product{ID: "p2", Name: domain.LocalizedText{"en": "Card"}, Price: 2.00},
	)

	var persisted *domain.Order
	orderRepo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (string, error) {
			order.ID = "order-1"
			persisted = order
			return order.ID, nil
		},
	}

	notifier := newMockNotifier()
	uc := NewCreateOrderUseCase(orderRepo, products, notifier, zap.NewNop())

	order, err := uc.Create(context.Background(), testCaller, dto.CreateOrderRequest{
		Items: []dto.CreateOrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		ContactChannel: "whatsapp",
		ContactValue:   "+994501234567",
		Total:          10.00,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.ID != "order-1" {
		t.Errorf("expected generated id, got %q", order.ID)
	}
	if persisted.Status != domain.OrderStatusRequested {
		t.Errorf("expected status requested, got %s", persisted.Status)
	}
	if persisted.Total != 10.00 {
		t.Errorf("expected submitted total to be persisted, got %f", persisted.Total)
	}
	if persisted.UserID != testCaller.UID {
		t.Errorf("expected owner from identity, got %q", persisted.UserID)
	}
	if persisted.Items[0].Price != 4.00 || persisted.Items[0].OriginalPrice != 5.00 {
		t.Errorf("expected denormalized effective/original prices, got %+v", persisted.Items[0])
	}
	if persisted.Items[0].ProductName.Get("en") != "Key" {
		t.Errorf("expected denormalized product name, got %+v", persisted.Items[0].ProductName)
	}

	select {
	case <-notifier.signaled:
	case <-time.After(time.Second):
		t.Fatalf("expected a detached notification dispatch")
	}
	if notifier.createdCount() != 1 {
		t.Errorf("expected 1 created notification, got %d", notifier.createdCount())
	}
}

func TestCreate_UnknownProduct(t *testing.T) {
	uc := NewCreateOrderUseCase(&mockOrderRepository{}, catalogWith(), newMockNotifier(), zap.NewNop())

	_, err := uc.Create(context.Background(), testCaller, dto.CreateOrderRequest{
		Items:          []dto.CreateOrderItem{{ProductID: "missing", Quantity: 1}},
		ContactChannel: "telegram",
		ContactValue:   "@buyer",
		Total:          5.00,
	})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreate_TotalMismatch(t *testing.T) {
	products := catalogWith(domain.Product{ID: "p1", Name: domain.LocalizedText{"en": "Key"}, Price: 5.00})

	uc := NewCreateOrderUseCase(&mockOrderRepository{}, products, newMockNotifier(), zap.NewNop())

	_, err := uc.Create(context.Background(), testCaller, dto.CreateOrderRequest{
		Items:          []dto.CreateOrderItem{{ProductID: "p1", Quantity: 2}},
		ContactChannel: "whatsapp",
		ContactValue:   "+994501234567",
		Total:          9.00, // catalog says 10.00
	})

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Details[0].Field != "total" {
		t.Errorf("expected total field rejected, got %+v", ve.Details)
	}
}

func TestCreate_TotalWithinTolerance(t *testing.T) {
	products := catalogWith(domain.Product{ID: "p1", Name: domain.LocalizedText{"en": "Key"}, Price: 3.33})

	orderRepo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (string, error) {
			return "order-1", nil
		},
	}
	uc := NewCreateOrderUseCase(orderRepo, products, newMockNotifier(), zap.NewNop())

	_, err := uc.Create(context.Background(), testCaller, dto.CreateOrderRequest{
		Items:          []dto.CreateOrderItem{{ProductID: "p1", Quantity: 3}},
		ContactChannel: "whatsapp",
		ContactValue:   "+994501234567",
		Total:          9.99,
	})

	if err != nil {
		t.Errorf("expected rounding difference to be tolerated, got %v", err)
	}
}

func TestCreate_RepositoryFailure(t *testing.T) {
	products := catalogWith(domain.Product{ID: "p1", Name: domain.LocalizedText{"en": "Key"}, Price: 5.00})
	orderRepo := &mockOrderRepository{
		CreateFunc: func(ctx context.Context, order *domain.Order) (string, error) {
			return "", errors.New("write failed")
		},
	}

	notifier := newMockNotifier()
	uc := NewCreateOrderUseCase(orderRepo, products, notifier, zap.NewNop())

	_, err := uc.Create(context.Background(), testCaller, dto.CreateOrderRequest{
		Items:          []dto.CreateOrderItem{{ProductID: "p1", Quantity: 1}},
		ContactChannel: "whatsapp",
		ContactValue:   "+994501234567",
		Total:          5.00,
	})

	if _, ok := apperrors.IsInternalError(err); !ok {
		t.Errorf("expected InternalError, got %T", err)
	}
	if notifier.createdCount() != 0 {
		t.Errorf("expected no notification for a failed create")
	}
}
