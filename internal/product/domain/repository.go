package domain

import (
	"context"

	"gorm.io/gorm"
)

// Filter narrows a product listing. Empty fields are skipped; populated
// fields AND-combine. Query matches case-insensitively as a substring of
// name, sku, part number, brand or description.
type Filter struct {
	Query      string
	CategoryID *int64
	Brand      string
	Active     *bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter Filter) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	Brands(ctx context.Context, db *gorm.DB) ([]string, error)
}
