package category

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	categoryrepo "sebet/internal/category/repository"
	"sebet/internal/category/controller"
	"sebet/internal/category/usecase"
	userrepo "sebet/internal/user/repository"
)

func NewModule(db *mongo.Database, logger *zap.Logger) *controller.CategoryController {
	repo := categoryrepo.NewMongoCategoryRepository(db)
	userRepo := userrepo.NewMongoUserRepository(db)

	uc := usecase.NewCategoryUseCase(repo, userRepo, logger)
	return controller.NewCategoryController(uc, logger)
}
