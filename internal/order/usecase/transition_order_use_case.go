package usecase

import (
	"context"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	apperrors "sebet/internal/errors"
)

type TransitionOrderUseCase struct {
	orderRepo OrderRepository
	userRepo  UserRepository
	notifier  Notifier
	logger    *zap.Logger
}

func NewTransitionOrderUseCase(
	orderRepo OrderRepository,
	userRepo UserRepository,
	notifier Notifier,
	logger *zap.Logger,
) *TransitionOrderUseCase {
	return &TransitionOrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Transition moves an order along the lifecycle graph. The operator's admin
// flag is re-read from the user record at call time rather than trusted
// from a token claim.
func (uc *TransitionOrderUseCase) Transition(ctx context.Context, operator auth.Identity, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of requested, process, completed, cancelled",
		})
	}

	user, err := uc.userRepo.FindByID(ctx, operator.UID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewForbiddenError("admin privilege required")
		}
		return nil, apperrors.NewInternalError("loading operator", err)
	}
	if !user.Admin {
		return nil, apperrors.NewForbiddenError("admin privilege required")
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if !previous.CanTransitionTo(next) {
		return nil, apperrors.NewInvalidTransitionError(string(previous), string(next))
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, previous, next); err != nil {
		return nil, err
	}
	order.Status = next

	uc.logger.Info("order status changed",
		zap.String("orderId", orderID),
		zap.String("operator", operator.UID),
		zap.String("from", string(previous)),
		zap.String("to", string(next)))

	dispatched := *order
	go func() {
		uc.notifier.SendStatusUpdate(context.Background(), dispatched, previous)
	}()

	return order, nil
}
