package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, category *Category) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Category, error)
	Update(ctx context.Context, db *gorm.DB, category *Category) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	// CountProducts reports how many products reference the category.
	CountProducts(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
