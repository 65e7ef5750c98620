package dto

import (
	"time"

	"sebet/internal/domain"
)

type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Admin     bool      `json:"admin"`
	Theme     string    `json:"theme,omitempty"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdatePreferencesRequest struct {
	Theme    string `json:"theme,omitempty"`
	Language string `json:"language,omitempty"`
}

type SetAdminRequest struct {
	Admin bool `json:"admin"`
}

func UserToDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Admin:     u.Admin,
		Theme:     u.Theme,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
	}
}
