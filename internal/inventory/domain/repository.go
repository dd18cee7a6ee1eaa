package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *Entry) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Entry, error)
	FindByProductID(ctx context.Context, db *gorm.DB, productID int64) (*Entry, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]EntryWithProduct, error)
	Update(ctx context.Context, db *gorm.DB, entry *Entry) error
	DeleteByProductID(ctx context.Context, db *gorm.DB, productID int64) error

	// LowStock returns entries whose stock is strictly below their minimum,
	// falling back to defaultMinStock when the entry has none of its own.
	LowStock(ctx context.Context, db *gorm.DB, defaultMinStock int) ([]EntryWithProduct, error)
}
