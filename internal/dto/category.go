package dto

import "sebet/internal/domain"

type CategoryDTO struct {
	ID            string               `json:"id"`
	Name          domain.LocalizedText `json:"name"`
	Subcategories []SubcategoryDTO     `json:"subcategories"`
}

type SubcategoryDTO struct {
	ID   string               `json:"id"`
	Name domain.LocalizedText `json:"name"`
}

type UpsertCategoryRequest struct {
	Name          domain.LocalizedText    `json:"name"`
	Subcategories []UpsertSubcategoryItem `json:"subcategories,omitempty"`
}

type UpsertSubcategoryItem struct {
	ID   string               `json:"id,omitempty"`
	Name domain.LocalizedText `json:"name"`
}

func CategoryToDTO(c domain.Category) CategoryDTO {
	subs := make([]SubcategoryDTO, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, SubcategoryDTO{ID: s.ID, Name: s.Name})
	}
	return CategoryDTO{ID: c.ID, Name: c.Name, Subcategories: subs}
}
