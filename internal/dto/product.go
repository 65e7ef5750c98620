package dto

import (
	"time"

	"sebet/internal/domain"
)

type ProductDTO struct {
	ID            string               `json:"id"`
	Name          domain.LocalizedText `json:"name"`
	Description   domain.LocalizedText `json:"description,omitempty"`
	Price         float64              `json:"price"`
	DiscountPrice *float64             `json:"discountPrice,omitempty"`
	CategoryID    string               `json:"categoryId,omitempty"`
	SubcategoryID string               `json:"subcategoryId,omitempty"`
	ImageURL      string               `json:"imageUrl,omitempty"`
	Active        bool                 `json:"active"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type UpsertProductRequest struct {
	Name          domain.LocalizedText `json:"name"`
	Description   domain.LocalizedText `json:"description,omitempty"`
	Price         float64              `json:"price"`
	DiscountPrice *float64             `json:"discountPrice,omitempty"`
	CategoryID    string               `json:"categoryId,omitempty"`
	SubcategoryID string               `json:"subcategoryId,omitempty"`
	ImageURL      string               `json:"imageUrl,omitempty"`
	Active        bool                 `json:"active"`
}

type ListProductsParams struct {
	CategoryID    string
	SubcategoryID string
	ActiveOnly    bool
	Limit         int
	Offset        int
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
}

func ProductToDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		ImageURL:      p.ImageURL,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
	}
}
