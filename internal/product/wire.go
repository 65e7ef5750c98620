package product

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"sebet/internal/product/controller"
	productrepo "sebet/internal/product/repository"
	"sebet/internal/product/usecase"
	userrepo "sebet/internal/user/repository"
)

func NewModule(db *mongo.Database, logger *zap.Logger) *controller.ProductController {
	repo := productrepo.NewMongoProductsRepository(db)
	userRepo := userrepo.NewMongoUserRepository(db)

	uc := usecase.NewCatalogUseCase(repo, userRepo, logger)
	return controller.NewProductController(uc, logger)
}
