package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

type mockCategoryRepository struct {
	ListFunc     func(ctx context.Context) ([]domain.Category, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.Category, error)
	CreateFunc   func(ctx context.Context, category *domain.Category) (string, error)
	UpdateFunc   func(ctx context.Context, category *domain.Category) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	return m.ListFunc(ctx)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) (string, error) {
	return m.CreateFunc(ctx, category)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return m.UpdateFunc(ctx, category)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func adminUserRepo() *mockUserRepository {
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Admin: id == "admin-1"}, nil
		},
	}
}

var admin = auth.Identity{UID: "admin-1"}

func TestList_Public(t *testing.T) {
	repo := &mockCategoryRepository{
		ListFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: "cat-1", Name: domain.LocalizedText{"az": "Oyunlar", "en": "Games"}},
			}, nil
		},
	}
	uc := NewCategoryUseCase(repo, nil, zap.NewNop())

	categories, err := uc.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(categories) != 1 || categories[0].Name.Get("en") != "Games" {
		t.Errorf("unexpected result: %+v", categories)
	}
}

func TestCreate_NonAdminForbidden(t *testing.T) {
	uc := NewCategoryUseCase(&mockCategoryRepository{}, adminUserRepo(), zap.NewNop())

	_, err := uc.Create(context.Background(), auth.Identity{UID: "user-1"}, dto.UpsertCategoryRequest{
		Name: domain.LocalizedText{"az": "Oyunlar"},
	})

	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}

func TestCreate_ValidatesSubcategoryNames(t *testing.T) {
	uc := NewCategoryUseCase(&mockCategoryRepository{}, adminUserRepo(), zap.NewNop())

	_, err := uc.Create(context.Background(), admin, dto.UpsertCategoryRequest{
		Name: domain.LocalizedText{"az": "Oyunlar"},
		Subcategories: []dto.UpsertSubcategoryItem{
			{Name: domain.LocalizedText{"az": "Hesablar"}},
			{Name: domain.LocalizedText{}},
		},
	})

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Details) != 1 || ve.Details[0].Field != "subcategories[1].name" {
		t.Errorf("expected a detail for subcategories[1].name, got %v", ve.Details)
	}
}

func TestCreate_AdminCreates(t *testing.T) {
	repo := &mockCategoryRepository{
		CreateFunc: func(ctx context.Context, category *domain.Category) (string, error) {
			return "cat-1", nil
		},
	}
	uc := NewCategoryUseCase(repo, adminUserRepo(), zap.NewNop())

	category, err := uc.Create(context.Background(), admin, dto.UpsertCategoryRequest{
		Name: domain.LocalizedText{"az": "Oyunlar"},
		Subcategories: []dto.UpsertSubcategoryItem{
			{Name: domain.LocalizedText{"az": "Hesablar"}},
		},
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(category.Subcategories) != 1 {
		t.Errorf("expected the subcategory to survive, got %+v", category)
	}
}

func TestUpdate_MissingCategory(t *testing.T) {
	repo := &mockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Category, error) {
			return nil, apperrors.NewNotFoundError("category not found")
		},
	}
	uc := NewCategoryUseCase(repo, adminUserRepo(), zap.NewNop())

	_, err := uc.Update(context.Background(), admin, "missing", dto.UpsertCategoryRequest{
		Name: domain.LocalizedText{"az": "Oyunlar"},
	})

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestDelete_AdminDeletes(t *testing.T) {
	var deleted string
	repo := &mockCategoryRepository{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	uc := NewCategoryUseCase(repo, adminUserRepo(), zap.NewNop())

	if err := uc.Delete(context.Background(), admin, "cat-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != "cat-1" {
		t.Errorf("expected cat-1 deleted, got %s", deleted)
	}
}
