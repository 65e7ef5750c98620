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

type mockProductRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Product, error)
	ListFunc     func(ctx context.Context, categoryID, subcategoryID string, activeOnly bool, limit, offset int64) ([]domain.Product, error)
	CreateFunc   func(ctx context.Context, product *domain.Product) (string, error)
	UpdateFunc   func(ctx context.Context, product *domain.Product) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductRepository) List(ctx context.Context, categoryID, subcategoryID string, activeOnly bool, limit, offset int64) ([]domain.Product, error) {
	return m.ListFunc(ctx, categoryID, subcategoryID, activeOnly, limit, offset)
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	return m.CreateFunc(ctx, product)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return m.UpdateFunc(ctx, product)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
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

func validUpsert() dto.UpsertProductRequest {
	return dto.UpsertProductRequest{
		Name:       domain.LocalizedText{"az": "Oyun hesabı", "en": "Game account"},
		Price:      9.99,
		CategoryID: "cat-1",
		Active:     true,
	}
}

func TestList_PublicNoAdminCheck(t *testing.T) {
	repo := &mockProductRepository{
		ListFunc: func(ctx context.Context, categoryID, subcategoryID string, activeOnly bool, limit, offset int64) ([]domain.Product, error) {
			if categoryID != "cat-1" || !activeOnly {
				t.Errorf("expected filters to pass through, got %s/%v", categoryID, activeOnly)
			}
			return []domain.Product{{ID: "prod-1", Price: 5}}, nil
		},
	}
	uc := NewCatalogUseCase(repo, nil, zap.NewNop())

	products, err := uc.List(context.Background(), dto.ListProductsParams{CategoryID: "cat-1", ActiveOnly: true})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(products) != 1 || products[0].ID != "prod-1" {
		t.Errorf("unexpected result: %+v", products)
	}
}

func TestList_ClampsLimit(t *testing.T) {
	var gotLimit int64
	repo := &mockProductRepository{
		ListFunc: func(ctx context.Context, categoryID, subcategoryID string, activeOnly bool, limit, offset int64) ([]domain.Product, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	uc := NewCatalogUseCase(repo, nil, zap.NewNop())

	if _, err := uc.List(context.Background(), dto.ListProductsParams{Limit: 9999}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotLimit != 100 {
		t.Errorf("expected limit capped at 100, got %d", gotLimit)
	}
}

func TestCreate_AdminCreates(t *testing.T) {
	repo := &mockProductRepository{
		CreateFunc: func(ctx context.Context, product *domain.Product) (string, error) {
			return "prod-1", nil
		},
	}
	uc := NewCatalogUseCase(repo, adminUserRepo(), zap.NewNop())

	product, err := uc.Create(context.Background(), admin, validUpsert())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if product.Name.Get("en") != "Game account" {
		t.Errorf("unexpected product: %+v", product)
	}
}

func TestCreate_NonAdminForbidden(t *testing.T) {
	uc := NewCatalogUseCase(&mockProductRepository{}, adminUserRepo(), zap.NewNop())

	_, err := uc.Create(context.Background(), auth.Identity{UID: "user-1"}, validUpsert())

	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}

func TestCreate_ValidationRules(t *testing.T) {
	discountTooHigh := 12.0
	discountNegative := -1.0

	cases := []struct {
		name  string
		req   dto.UpsertProductRequest
		field string
	}{
		{
			name:  "empty name",
			req:   dto.UpsertProductRequest{Price: 5},
			field: "name",
		},
		{
			name:  "zero price",
			req:   dto.UpsertProductRequest{Name: domain.LocalizedText{"az": "x"}},
			field: "price",
		},
		{
			name:  "discount above price",
			req:   dto.UpsertProductRequest{Name: domain.LocalizedText{"az": "x"}, Price: 10, DiscountPrice: &discountTooHigh},
			field: "discountPrice",
		},
		{
			name:  "negative discount",
			req:   dto.UpsertProductRequest{Name: domain.LocalizedText{"az": "x"}, Price: 10, DiscountPrice: &discountNegative},
			field: "discountPrice",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewCatalogUseCase(&mockProductRepository{}, adminUserRepo(), zap.NewNop())

			_, err := uc.Create(context.Background(), admin, tc.req)

			ve, ok := apperrors.IsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			found := false
			for _, d := range ve.Details {
				if d.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a detail for field %q, got %v", tc.field, ve.Details)
			}
		})
	}
}

func TestUpdate_KeepsIdentityAndCreationTime(t *testing.T) {
	existing := domain.Product{ID: "prod-1", Price: 5}
	var updated *domain.Product
	repo := &mockProductRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return &existing, nil
		},
		UpdateFunc: func(ctx context.Context, product *domain.Product) error {
			updated = product
			return nil
		},
	}
	uc := NewCatalogUseCase(repo, adminUserRepo(), zap.NewNop())

	if _, err := uc.Update(context.Background(), admin, "prod-1", validUpsert()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.ID != "prod-1" {
		t.Errorf("expected the stored id to survive the update, got %s", updated.ID)
	}
	if updated.Price != 9.99 {
		t.Errorf("expected the new price, got %v", updated.Price)
	}
}

func TestUpdate_MissingProduct(t *testing.T) {
	repo := &mockProductRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product not found")
		},
	}
	uc := NewCatalogUseCase(repo, adminUserRepo(), zap.NewNop())

	_, err := uc.Update(context.Background(), admin, "missing", validUpsert())

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestDelete_AdminDeletes(t *testing.T) {
	var deleted string
	repo := &mockProductRepository{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	uc := NewCatalogUseCase(repo, adminUserRepo(), zap.NewNop())

	if err := uc.Delete(context.Background(), admin, "prod-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != "prod-1" {
		t.Errorf("expected prod-1 deleted, got %s", deleted)
	}
}
