package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	List(ctx context.Context) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	LowStock(ctx context.Context) ([]Response, error)
}

type UpdateRequest struct {
	ID       string  `json:"-"`
	Stock    *int    `json:"stock"`
	MinStock *int    `json:"min_stock"`
	Location *string `json:"location"`
}

type Response struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	ProductSKU  string    `json:"product_sku,omitempty"`
	Stock       int       `json:"stock"`
	MinStock    *int      `json:"min_stock,omitempty"`
	Location    string    `json:"location,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidStock    = errors.New("invalid_stock")
	ErrInvalidMinStock = errors.New("invalid_min_stock")
	ErrNotFound        = errors.New("not_found")
)
