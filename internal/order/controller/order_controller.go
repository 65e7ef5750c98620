package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

type CreateOrderUseCase interface {
	Create(ctx context.Context, caller auth.Identity, req dto.CreateOrderRequest) (*domain.Order, error)
}

type TransitionOrderUseCase interface {
	Transition(ctx context.Context, operator auth.Identity, orderID string, next domain.OrderStatus) (*domain.Order, error)
}

type GetOrdersUseCase interface {
	GetByID(ctx context.Context, caller auth.Identity, orderID string, includeProducts bool) (*dto.OrderDTO, error)
	ListMine(ctx context.Context, caller auth.Identity, params dto.ListOrdersParams) ([]dto.OrderDTO, error)
	ListAll(ctx context.Context, caller auth.Identity, params dto.ListOrdersParams) ([]dto.OrderDTO, error)
}

type OrderController struct {
	createUC     CreateOrderUseCase
	transitionUC TransitionOrderUseCase
	getUC        GetOrdersUseCase
	logger       *zap.Logger
}

func NewOrderController(
	createUC CreateOrderUseCase,
	transitionUC TransitionOrderUseCase,
	getUC GetOrdersUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createUC:     createUC,
		transitionUC: transitionUC,
		getUC:        getUC,
		logger:       logger,
	}
}

func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", logger)
		return
	}

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	order, err := c.createUC.Create(r.Context(), *caller, req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		TraceID: traceID,
		OrderID: order.ID,
		Status:  string(order.Status),
	})
}

func (c *OrderController) HandleTransition(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", logger)
		return
	}

	orderID := chi.URLParam(r, "orderId")

	var req dto.TransitionOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.transitionUC.Transition(r.Context(), *caller, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"traceId": traceID,
		"orderId": order.ID,
		"status":  string(order.Status),
	})
}

func (c *OrderController) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", logger)
		return
	}

	orderID := chi.URLParam(r, "orderId")
	includeProducts := r.URL.Query().Get("includeProducts") == "true"

	order, err := c.getUC.GetByID(r.Context(), *caller, orderID, includeProducts)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) HandleListMine(w http.ResponseWriter, r *http.Request) {
	c.handleList(w, r, func(ctx context.Context, caller auth.Identity, params dto.ListOrdersParams) ([]dto.OrderDTO, error) {
		return c.getUC.ListMine(ctx, caller, params)
	})
}

func (c *OrderController) HandleListAll(w http.ResponseWriter, r *http.Request) {
	c.handleList(w, r, func(ctx context.Context, caller auth.Identity, params dto.ListOrdersParams) ([]dto.OrderDTO, error) {
		return c.getUC.ListAll(ctx, caller, params)
	})
}

func (c *OrderController) handleList(
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context, auth.Identity, dto.ListOrdersParams) ([]dto.OrderDTO, error),
) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", logger)
		return
	}

	params := parseListParams(r)
	orders, err := list(r.Context(), *caller, params)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	if orders == nil {
		orders = []dto.OrderDTO{}
	}
	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{
		Orders: orders,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

func parseListParams(r *http.Request) dto.ListOrdersParams {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return dto.ListOrdersParams{
		Limit:           limit,
		Offset:          offset,
		IncludeProducts: q.Get("includeProducts") == "true",
	}
}

func validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for idx, item := range req.Items {
		if item.ProductID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId is required",
			})
		}
		if item.Quantity <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}

	if !domain.ContactChannel(req.ContactChannel).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "contactChannel",
			Message: "contactChannel must be whatsapp or telegram",
		})
	}

	if req.ContactValue == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "contactValue",
			Message: "contactValue is required",
		})
	}

	if req.Total <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "total",
			Message: "total must be positive",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), logger)
		return
	}
	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeError(w, traceID, http.StatusForbidden, "FORBIDDEN", "operation not permitted", logger)
		return
	}
	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeError(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", err.Error(), logger)
		return
	}
	if _, ok := apperrors.IsInvalidTransitionError(err); ok {
		c.writeError(w, traceID, http.StatusConflict, "INVALID_TRANSITION", err.Error(), logger)
		return
	}
	if _, ok := apperrors.IsUnavailableError(err); ok {
		c.writeError(w, traceID, http.StatusServiceUnavailable, "UNAVAILABLE", "backing service not available", logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", logger)
}

type validationErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details"`
	Timestamp time.Time                    `json:"timestamp"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		TraceID:   traceID,
		Error:     "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *OrderController) writeError(w http.ResponseWriter, traceID string, status int, code, message string, logger *zap.Logger) {
	logger.Warn("request failed", zap.Int("status", status), zap.String("code", code), zap.String("message", message))
	c.writeJSON(w, status, errorResponse{
		TraceID:   traceID,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
