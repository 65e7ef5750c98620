package dto

import (
	"time"

	"sebet/internal/domain"
)

type CreateOrderRequest struct {
	Items          []CreateOrderItem `json:"items"`
	ContactChannel string            `json:"contactChannel"`
	ContactValue   string            `json:"contactValue"`
	ContactName    string            `json:"contactName,omitempty"`
	Total          float64           `json:"total"`
}

type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderResponse struct {
	TraceID string `json:"traceId"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type TransitionOrderRequest struct {
	Status string `json:"status"`
}

type ListOrdersParams struct {
	Limit           int
	Offset          int
	IncludeProducts bool
}

type OrderDTO struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Items     []OrderItemDTO `json:"items"`
	Contact   ContactDTO     `json:"contact"`
	Total     float64        `json:"total"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

type OrderItemDTO struct {
	ProductID     string               `json:"productId"`
	ProductName   domain.LocalizedText `json:"productName"`
	Quantity      int                  `json:"quantity"`
	Price         float64              `json:"price"`
	OriginalPrice float64              `json:"originalPrice"`
	// Product is resolved on demand and null when the referenced product
	// no longer exists.
	Product *ProductDTO `json:"product,omitempty"`
}

type ContactDTO struct {
	Channel string `json:"channel"`
	Value   string `json:"value"`
	Name    string `json:"name,omitempty"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}
