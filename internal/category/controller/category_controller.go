package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

type CategoryUseCase interface {
	List(ctx context.Context) ([]dto.CategoryDTO, error)
	GetByID(ctx context.Context, id string) (*dto.CategoryDTO, error)
	Create(ctx context.Context, operator auth.Identity, req dto.UpsertCategoryRequest) (*dto.CategoryDTO, error)
	Update(ctx context.Context, operator auth.Identity, id string, req dto.UpsertCategoryRequest) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, operator auth.Identity, id string) error
}

type CategoryController struct {
	useCase CategoryUseCase
	logger  *zap.Logger
}

func NewCategoryController(useCase CategoryUseCase, logger *zap.Logger) *CategoryController {
	return &CategoryController{useCase: useCase, logger: logger}
}

func (c *CategoryController) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := c.useCase.List(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (c *CategoryController) HandleGet(w http.ResponseWriter, r *http.Request) {
	category, err := c.useCase.GetByID(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, category)
}

func (c *CategoryController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req dto.UpsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	category, err := c.useCase.Create(r.Context(), *caller, req)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, category)
}

func (c *CategoryController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req dto.UpsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	category, err := c.useCase.Update(r.Context(), *caller, chi.URLParam(r, "categoryId"), req)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, category)
}

func (c *CategoryController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	if err := c.useCase.Delete(r.Context(), *caller, chi.URLParam(r, "categoryId")); err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *CategoryController) handleError(w http.ResponseWriter, err error) {
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

func (c *CategoryController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:     "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *CategoryController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *CategoryController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
