package usecase

import (
	"context"

	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/domain"
	"sebet/internal/dto"
	apperrors "sebet/internal/errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Ensure(ctx context.Context, user domain.User) error
	List(ctx context.Context, limit, offset int64) ([]domain.User, error)
	SetAdmin(ctx context.Context, id string, admin bool) error
	UpdatePreferences(ctx context.Context, id, theme, language string) error
}

type UserUseCase struct {
	repo   Repository
	logger *zap.Logger
}

func NewUserUseCase(repo Repository, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, logger: logger}
}

// Ensure mirrors the identity-provider account locally. Called from the
// auth middleware on every verified request; a no-op when the record
// already exists.
func (uc *UserUseCase) Ensure(ctx context.Context, id auth.Identity) error {
	return uc.repo.Ensure(ctx, domain.User{
		ID:    id.UID,
		Email: id.Email,
		Name:  id.Name,
	})
}

func (uc *UserUseCase) GetProfile(ctx context.Context, caller auth.Identity) (*dto.UserDTO, error) {
	user, err := uc.repo.FindByID(ctx, caller.UID)
	if err != nil {
		return nil, err
	}
	d := dto.UserToDTO(*user)
	return &d, nil
}

func (uc *UserUseCase) UpdatePreferences(ctx context.Context, caller auth.Identity, req dto.UpdatePreferencesRequest) error {
	return uc.repo.UpdatePreferences(ctx, caller.UID, req.Theme, req.Language)
}

// List returns all users. Admin only.
func (uc *UserUseCase) List(ctx context.Context, caller auth.Identity, limit, offset int) ([]dto.UserDTO, error) {
	if err := uc.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := uc.repo.List(ctx, int64(limit), int64(offset))
	if err != nil {
		return nil, apperrors.NewInternalError("listing users", err)
	}

	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, dto.UserToDTO(u))
	}
	return result, nil
}

// SetAdmin grants or revokes the admin flag. Admin only.
func (uc *UserUseCase) SetAdmin(ctx context.Context, caller auth.Identity, userID string, admin bool) error {
	if err := uc.requireAdmin(ctx, caller); err != nil {
		return err
	}

	if err := uc.repo.SetAdmin(ctx, userID, admin); err != nil {
		return err
	}

	uc.logger.Info("admin flag changed",
		zap.String("userId", userID),
		zap.Bool("admin", admin),
		zap.String("operator", caller.UID))
	return nil
}

func (uc *UserUseCase) requireAdmin(ctx context.Context, caller auth.Identity) error {
	user, err := uc.repo.FindByID(ctx, caller.UID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewForbiddenError("admin privilege required")
		}
		return apperrors.NewInternalError("loading caller", err)
	}
	if !user.Admin {
		return apperrors.NewForbiddenError("admin privilege required")
	}
	return nil
}
