package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

type UserUseCase interface {
	GetProfile(ctx context.Context, caller auth.Identity) (*dto.UserDTO, error)
	UpdatePreferences(ctx context.Context, caller auth.Identity, req dto.UpdatePreferencesRequest) error
	List(ctx context.Context, caller auth.Identity, limit, offset int) ([]dto.UserDTO, error)
	SetAdmin(ctx context.Context, caller auth.Identity, userID string, admin bool) error
}

type UserController struct {
	useCase UserUseCase
	logger  *zap.Logger
}

func NewUserController(useCase UserUseCase, logger *zap.Logger) *UserController {
	return &UserController{useCase: useCase, logger: logger}
}

func (c *UserController) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	profile, err := c.useCase.GetProfile(r.Context(), *caller)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, profile)
}

func (c *UserController) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	if err := c.useCase.UpdatePreferences(r.Context(), *caller, req); err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *UserController) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	users, err := c.useCase.List(r.Context(), *caller, limit, offset)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (c *UserController) HandleSetAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req dto.SetAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	if err := c.useCase.SetAdmin(r.Context(), *caller, chi.URLParam(r, "userId"), req.Admin); err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *UserController) handleError(w http.ResponseWriter, err error) {
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

func (c *UserController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *UserController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
