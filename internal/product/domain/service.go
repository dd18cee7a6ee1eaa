package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	Brands(ctx context.Context) ([]string, error)
}

type ListRequest struct {
	Query      string
	CategoryID string
	Brand      string
	Active     *bool
}

type CreateRequest struct {
	Name        string           `json:"name"`
	CategoryID  string           `json:"category_id"`
	Brand       string           `json:"brand"`
	SKU         string           `json:"sku"`
	PartNumber  *string          `json:"part_number"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Icon        string           `json:"icon"`
	Active      *bool            `json:"active"`
	Metadata    map[string]any   `json:"metadata"`

	// Optional stock tracking; when Stock is present an inventory entry is
	// created together with the product.
	Stock    *int   `json:"stock"`
	MinStock *int   `json:"min_stock"`
	Location string `json:"location"`
}

type UpdateRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name"`
	CategoryID  *string          `json:"category_id"`
	Brand       *string          `json:"brand"`
	SKU         *string          `json:"sku"`
	PartNumber  *string          `json:"part_number"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Icon        *string          `json:"icon"`
	Active      *bool            `json:"active"`
	Metadata    map[string]any   `json:"metadata"`
}

type Response struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	SKU         string          `json:"sku"`
	PartNumber  *string         `json:"part_number,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
	Icon        string          `json:"icon"`
	Active      bool            `json:"active"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidSKU      = errors.New("invalid_sku")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidStock    = errors.New("invalid_stock")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
