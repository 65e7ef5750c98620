package usecase

import (
	"context"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type GetOrdersUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	userRepo    UserRepository
	logger      *zap.Logger
}

func NewGetOrdersUseCase(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	userRepo UserRepository,
	logger *zap.Logger,
) *GetOrdersUseCase {
	return &GetOrdersUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID returns one order to its owner or to an admin.
func (uc *GetOrdersUseCase) GetByID(ctx context.Context, caller auth.Identity, orderID string, includeProducts bool) (*dto.OrderDTO, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != caller.UID {
		admin, err := uc.callerIsAdmin(ctx, caller)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, apperrors.NewForbiddenError("not the order owner")
		}
	}

	result := uc.toDTOs(ctx, []domain.Order{*order}, includeProducts)
	return &result[0], nil
}

// ListMine returns the caller's own orders, newest first.
func (uc *GetOrdersUseCase) ListMine(ctx context.Context, caller auth.Identity, params dto.ListOrdersParams) ([]dto.OrderDTO, error) {
	limit, offset := clampPage(params.Limit, params.Offset)

	orders, err := uc.orderRepo.ListByUser(ctx, caller.UID, int64(limit+offset))
	if err != nil {
		return nil, apperrors.NewInternalError("listing orders", err)
	}

	return uc.toDTOs(ctx, page(orders, offset), params.IncludeProducts), nil
}

// ListAll returns every order, newest first. Admin only.
func (uc *GetOrdersUseCase) ListAll(ctx context.Context, caller auth.Identity, params dto.ListOrdersParams) ([]dto.OrderDTO, error) {
	admin, err := uc.callerIsAdmin(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, apperrors.NewForbiddenError("admin privilege required")
	}

	limit, offset := clampPage(params.Limit, params.Offset)

	orders, err := uc.orderRepo.ListAll(ctx, int64(limit+offset))
	if err != nil {
		return nil, apperrors.NewInternalError("listing orders", err)
	}

	return uc.toDTOs(ctx, page(orders, offset), params.IncludeProducts), nil
}

func (uc *GetOrdersUseCase) callerIsAdmin(ctx context.Context, caller auth.Identity) (bool, error) {
	user, err := uc.userRepo.FindByID(ctx, caller.UID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return false, nil
		}
		return false, apperrors.NewInternalError("loading caller", err)
	}
	return user.Admin, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// page discards the first offset rows of an over-fetched result. The store
// is asked for limit+offset rows because it cannot skip with this sort;
// O(limit+offset) per call, fine while the corpus stays small.
func page(orders []domain.Order, offset int) []domain.Order {
	if offset >= len(orders) {
		return nil
	}
	return orders[offset:]
}

// toDTOs maps orders and, when asked, batch-resolves the referenced
// products. A product that no longer exists resolves to null instead of
// failing the whole read.
func (uc *GetOrdersUseCase) toDTOs(ctx context.Context, orders []domain.Order, includeProducts bool) []dto.OrderDTO {
	var byID map[string]domain.Product
	if includeProducts {
		idSet := make(map[string]struct{})
		var ids []string
		for _, o := range orders {
			for _, item := range o.Items {
				if _, ok := idSet[item.ProductID]; !ok {
					idSet[item.ProductID] = struct{}{}
					ids = append(ids, item.ProductID)
				}
			}
		}

		products, err := uc.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			uc.logger.Warn("product resolution failed, returning bare references", zap.Error(err))
		} else {
			byID = make(map[string]domain.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}
		}
	}

	result := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		items := make([]dto.OrderItemDTO, 0, len(o.Items))
		for _, item := range o.Items {
			itemDTO := dto.OrderItemDTO{
				ProductID:     item.ProductID,
				ProductName:   item.ProductName,
				Quantity:      item.Quantity,
				Price:         item.Price,
				OriginalPrice: item.OriginalPrice,
			}
			if product, ok := byID[item.ProductID]; ok {
				p := dto.ProductToDTO(product)
				itemDTO.Product = &p
			}
			items = append(items, itemDTO)
		}

		result = append(result, dto.OrderDTO{
			ID:     o.ID,
			UserID: o.UserID,
			Items:  items,
			Contact: dto.ContactDTO{
				Channel: string(o.Contact.Channel),
				Value:   o.Contact.Value,
				Name:    o.Contact.Name,
			},
			Total:     o.Total,
			Status:    string(o.Status),
			CreatedAt: o.CreatedAt,
		})
	}
	return result
}
