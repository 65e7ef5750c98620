package usecase

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

// totalTolerance absorbs float rounding between the client's sum and ours.
const totalTolerance = 0.009

type CreateOrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	notifier    Notifier
	logger      *zap.Logger
}

func NewCreateOrderUseCase(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	notifier Notifier,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create validates the request against the catalog, persists the order in
// the requested state and schedules the operator notification. The
// notification is detached: its failure never fails or rolls back the order.
func (uc *CreateOrderUseCase) Create(ctx context.Context, caller auth.Identity, req dto.CreateOrderRequest) (*domain.Order, error) {
	ids := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := uc.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewInternalError("resolving products", err)
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, apperrors.NewValidationError("unknown product", apperrors.ValidationDetail{
				Field:   "items",
				Message: fmt.Sprintf("product %s does not exist", item.ProductID),
			})
		}

		effective := product.EffectivePrice()
		items = append(items, domain.OrderItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      item.Quantity,
			Price:         effective,
			OriginalPrice: product.Price,
		})
		total += effective * float64(item.Quantity)
	}

	// The submitted total must match the authoritative catalog prices; a
	// stale or tampered cart is rejected instead of silently trusted.
	if math.Abs(total-req.Total) > totalTolerance {
		return nil, apperrors.NewValidationError("total mismatch", apperrors.ValidationDetail{
			Field:   "total",
			Message: fmt.Sprintf("submitted total %.2f does not match catalog total %.2f", req.Total, total),
		})
	}

	order := &domain.Order{
		UserID: caller.UID,
		Items:  items,
		Contact: domain.Contact{
			Channel: domain.ContactChannel(req.ContactChannel),
			Value:   req.ContactValue,
			Name:    req.ContactName,
		},
		Total:  req.Total,
		Status: domain.OrderStatusRequested,
	}

	id, err := uc.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, apperrors.NewInternalError("creating order", err)
	}

	uc.logger.Info("order created",
		zap.String("orderId", id),
		zap.String("userId", caller.UID),
		zap.Float64("total", order.Total),
		zap.Int("itemCount", len(order.Items)))

	// Detached: the response does not wait for delivery and there is no
	// cancellation path once scheduled.
	dispatched := *order
	go func() {
		uc.notifier.SendOrderCreated(context.Background(), dispatched)
	}()

	return order, nil
}
