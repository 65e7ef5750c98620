package user

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"sebet/internal/user/controller"
	userrepo "sebet/internal/user/repository"
	"sebet/internal/user/usecase"
)

func NewModule(db *mongo.Database, logger *zap.Logger) (*controller.UserController, *usecase.UserUseCase) {
	repo := userrepo.NewMongoUserRepository(db)
	uc := usecase.NewUserUseCase(repo, logger)
	return controller.NewUserController(uc, logger), uc
}
