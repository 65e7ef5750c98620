package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

type CatalogUseCase interface {
	List(ctx context.Context, params dto.ListProductsParams) ([]dto.ProductDTO, error)
	GetByID(ctx context.Context, id string) (*dto.ProductDTO, error)
	Create(ctx context.Context, operator auth.Identity, req dto.UpsertProductRequest) (*dto.ProductDTO, error)
	Update(ctx context.Context, operator auth.Identity, id string, req dto.UpsertProductRequest) (*dto.ProductDTO, error)
	Delete(ctx context.Context, operator auth.Identity, id string) error
}

type ProductController struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewProductController(useCase CatalogUseCase, logger *zap.Logger) *ProductController {
	return &ProductController{useCase: useCase, logger: logger}
}

func (c *ProductController) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	params := dto.ListProductsParams{
		CategoryID:    q.Get("category"),
		SubcategoryID: q.Get("subcategory"),
		ActiveOnly:    q.Get("activeOnly") == "true",
		Limit:         limit,
		Offset:        offset,
	}

	products, err := c.useCase.List(r.Context(), params)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ListProductsResponse{
		Products: products,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

func (c *ProductController) HandleGet(w http.ResponseWriter, r *http.Request) {
	product, err := c.useCase.GetByID(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, product)
}

func (c *ProductController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req dto.UpsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.useCase.Create(r.Context(), *caller, req)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, product)
}

func (c *ProductController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req dto.UpsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.useCase.Update(r.Context(), *caller, chi.URLParam(r, "productId"), req)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, product)
}

func (c *ProductController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	if err := c.useCase.Delete(r.Context(), *caller, chi.URLParam(r, "productId")); err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *ProductController) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "operation not permitted")
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type validationErrorResponse struct {
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details"`
	Timestamp time.Time                    `json:"timestamp"`
}

func (c *ProductController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:     "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *ProductController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *ProductController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
