package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	categoryctrl "sebet/internal/category/controller"
	"sebet/internal/config"
	"sebet/internal/metrics"
	orderctrl "sebet/internal/order/controller"
	productctrl "sebet/internal/product/controller"
	userctrl "sebet/internal/user/controller"
)

type Controllers struct {
	Orders     *orderctrl.OrderController
	Products   *productctrl.ProductController
	Categories *categoryctrl.CategoryController
	Users      *userctrl.UserController
}

func NewRouter(
	cfg *config.Config,
	ctrls Controllers,
	authMiddleware func(http.Handler) http.Handler,
	serverMetrics *metrics.ServerMetrics,
	metricsHandler http.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(serverMetrics.Middleware)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", ctrls.Orders.HandleCreate)
			r.Get("/", ctrls.Orders.HandleListAll)
			r.Get("/mine", ctrls.Orders.HandleListMine)
			r.Get("/{orderId}", ctrls.Orders.HandleGet)
			r.Put("/{orderId}/status", ctrls.Orders.HandleTransition)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", ctrls.Products.HandleList)
			r.Post("/", ctrls.Products.HandleCreate)
			r.Get("/{productId}", ctrls.Products.HandleGet)
			r.Put("/{productId}", ctrls.Products.HandleUpdate)
			r.Delete("/{productId}", ctrls.Products.HandleDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", ctrls.Categories.HandleList)
			r.Post("/", ctrls.Categories.HandleCreate)
			r.Get("/{categoryId}", ctrls.Categories.HandleGet)
			r.Put("/{categoryId}", ctrls.Categories.HandleUpdate)
			r.Delete("/{categoryId}", ctrls.Categories.HandleDelete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", ctrls.Users.HandleList)
			r.Get("/me", ctrls.Users.HandleMe)
			r.Put("/me/preferences", ctrls.Users.HandleUpdatePreferences)
			r.Put("/{userId}/admin", ctrls.Users.HandleSetAdmin)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
