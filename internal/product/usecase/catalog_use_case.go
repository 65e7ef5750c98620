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

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, categoryID, subcategoryID string, activeOnly bool, limit, offset int64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (string, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type CatalogUseCase struct {
	repo     Repository
	userRepo UserRepository
	logger   *zap.Logger
}

func NewCatalogUseCase(repo Repository, userRepo UserRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, userRepo: userRepo, logger: logger}
}

func (uc *CatalogUseCase) List(ctx context.Context, params dto.ListProductsParams) ([]dto.ProductDTO, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	products, err := uc.repo.List(ctx, params.CategoryID, params.SubcategoryID, params.ActiveOnly, int64(limit), int64(offset))
	if err != nil {
		return nil, apperrors.NewInternalError("listing products", err)
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, dto.ProductToDTO(p))
	}
	return result, nil
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductDTO, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.ProductToDTO(*product)
	return &d, nil
}

func (uc *CatalogUseCase) Create(ctx context.Context, operator auth.Identity, req dto.UpsertProductRequest) (*dto.ProductDTO, error) {
	if err := uc.requireAdmin(ctx, operator); err != nil {
		return nil, err
	}
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	product := fromUpsert(req)
	id, err := uc.repo.Create(ctx, &product)
	if err != nil {
		return nil, apperrors.NewInternalError("creating product", err)
	}

	uc.logger.Info("product created", zap.String("productId", id), zap.String("operator", operator.UID))
	d := dto.ProductToDTO(product)
	return &d, nil
}

func (uc *CatalogUseCase) Update(ctx context.Context, operator auth.Identity, id string, req dto.UpsertProductRequest) (*dto.ProductDTO, error) {
	if err := uc.requireAdmin(ctx, operator); err != nil {
		return nil, err
	}
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product := fromUpsert(req)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := uc.repo.Update(ctx, &product); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.String("productId", id), zap.String("operator", operator.UID))
	d := dto.ProductToDTO(product)
	return &d, nil
}

func (uc *CatalogUseCase) Delete(ctx context.Context, operator auth.Identity, id string) error {
	if err := uc.requireAdmin(ctx, operator); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("product deleted", zap.String("productId", id), zap.String("operator", operator.UID))
	return nil
}

func (uc *CatalogUseCase) requireAdmin(ctx context.Context, operator auth.Identity) error {
	user, err := uc.userRepo.FindByID(ctx, operator.UID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewForbiddenError("admin privilege required")
		}
		return apperrors.NewInternalError("loading operator", err)
	}
	if !user.Admin {
		return apperrors.NewForbiddenError("admin privilege required")
	}
	return nil
}

func validateUpsert(req dto.UpsertProductRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name.Empty() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name requires at least one translation",
		})
	}
	if req.Price <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be positive",
		})
	}
	if req.DiscountPrice != nil && (*req.DiscountPrice <= 0 || *req.DiscountPrice >= req.Price) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "discountPrice",
			Message: "discountPrice must be positive and less than price",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func fromUpsert(req dto.UpsertProductRequest) domain.Product {
	return domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		ImageURL:      req.ImageURL,
		Active:        req.Active,
	}
}
