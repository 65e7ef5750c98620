package order

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"sebet/internal/order/controller"
	orderrepo "sebet/internal/order/repository"
	"sebet/internal/order/usecase"
	productrepo "sebet/internal/product/repository"
	userrepo "sebet/internal/user/repository"
)

func NewModule(db *mongo.Database, notifier usecase.Notifier, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMongoOrderRepository(db)
	productRepo := productrepo.NewMongoProductsRepository(db)
	userRepo := userrepo.NewMongoUserRepository(db)

	createUC := usecase.NewCreateOrderUseCase(orderRepo, productRepo, notifier, logger)
	transitionUC := usecase.NewTransitionOrderUseCase(orderRepo, userRepo, notifier, logger)
	getUC := usecase.NewGetOrdersUseCase(orderRepo, productRepo, userRepo, logger)

	return controller.NewOrderController(createUC, transitionUC, getUC, logger)
}
