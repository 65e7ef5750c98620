package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (string, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type CategoryUseCase struct {
	repo     Repository
	userRepo UserRepository
	logger   *zap.Logger
}

func NewCategoryUseCase(repo Repository, userRepo UserRepository, logger *zap.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, userRepo: userRepo, logger: logger}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("listing categories", err)
	}

	result := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.CategoryToDTO(c))
	}
	return result, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryDTO, error) {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.CategoryToDTO(*category)
	return &d, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, operator auth.Identity, req dto.UpsertCategoryRequest) (*dto.CategoryDTO, error) {
	if err := uc.requireAdmin(ctx, operator); err != nil {
		return nil, err
	}
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	category := fromUpsert(req)
	id, err := uc.repo.Create(ctx, &category)
	if err != nil {
		return nil, apperrors.NewInternalError("creating category", err)
	}

	uc.logger.Info("category created", zap.String("categoryId", id), zap.String("operator", operator.UID))
	d := dto.CategoryToDTO(category)
	return &d, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, operator auth.Identity, id string, req dto.UpsertCategoryRequest) (*dto.CategoryDTO, error) {
	if err := uc.requireAdmin(ctx, operator); err != nil {
		return nil, err
	}
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	if _, err := uc.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	category := fromUpsert(req)
	category.ID = id
	if err := uc.repo.Update(ctx, &category); err != nil {
		return nil, err
	}

	uc.logger.Info("category updated", zap.String("categoryId", id), zap.String("operator", operator.UID))
	d := dto.CategoryToDTO(category)
	return &d, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, operator auth.Identity, id string) error {
	if err := uc.requireAdmin(ctx, operator); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("category deleted", zap.String("categoryId", id), zap.String("operator", operator.UID))
	return nil
}

func (uc *CategoryUseCase) requireAdmin(ctx context.Context, operator auth.Identity) error {
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

func validateUpsert(req dto.UpsertCategoryRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name.Empty() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name requires at least one translation",
		})
	}
	for idx, sub := range req.Subcategories {
		if sub.Name.Empty() {
			details = append(details, apperrors.ValidationDetail{
				Field:   "subcategories[" + strconv.Itoa(idx) + "].name",
				Message: "name requires at least one translation",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func fromUpsert(req dto.UpsertCategoryRequest) domain.Category {
	subs := make([]domain.Subcategory, 0, len(req.Subcategories))
	for _, s := range req.Subcategories {
		subs = append(subs, domain.Subcategory{ID: s.ID, Name: s.Name})
	}
	return domain.Category{Name: req.Name, Subcategories: subs}
}
