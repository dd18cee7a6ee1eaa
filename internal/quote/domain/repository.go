package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, quote *Quote) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Quote, error)
	FindWithProduct(ctx context.Context, db *gorm.DB, id int64) (*QuoteWithProduct, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]QuoteWithProduct, error)
	FindByStatus(ctx context.Context, db *gorm.DB, status string) ([]QuoteWithProduct, error)
	Update(ctx context.Context, db *gorm.DB, quote *Quote) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
