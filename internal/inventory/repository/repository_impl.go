package repository

import (
	"context"

	"github.com/Antonio-99/catalogo/internal/inventory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, stock, min_stock, location, created_at, updated_at
		 FROM inventory_entries WHERE id = ?`,
		id,
	).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) FindByProductID(ctx context.Context, db *gorm.DB, productID int64) (*domain.Entry, error) {
	var entry domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, stock, min_stock, location, created_at, updated_at
		 FROM inventory_entries WHERE product_id = ?`,
		productID,
	).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.EntryWithProduct, error) {
	var items []domain.EntryWithProduct
	err := db.WithContext(ctx).Raw(
		`SELECT e.id, e.product_id, e.stock, e.min_stock, e.location, e.created_at, e.updated_at,
		        COALESCE(p.name, '') AS product_name,
		        COALESCE(p.sku, '') AS product_sku
		 FROM inventory_entries e
		 LEFT JOIN products p ON p.id = e.product_id
		 ORDER BY e.created_at ASC, e.id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	if entry == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE inventory_entries SET stock = ?, min_stock = ?, location = ?, updated_at = ?
		 WHERE id = ?`,
		entry.Stock,
		entry.MinStock,
		entry.Location,
		entry.UpdatedAt,
		entry.ID,
	).Error
}

func (r *repo) DeleteByProductID(ctx context.Context, db *gorm.DB, productID int64) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM inventory_entries WHERE product_id = ?`, productID,
	).Error
}

func (r *repo) LowStock(ctx context.Context, db *gorm.DB, defaultMinStock int) ([]domain.EntryWithProduct, error) {
	var items []domain.EntryWithProduct
	err := db.WithContext(ctx).Raw(
		`SELECT e.id, e.product_id, e.stock, e.min_stock, e.location, e.created_at, e.updated_at,
		        COALESCE(p.name, '') AS product_name,
		        COALESCE(p.sku, '') AS product_sku
		 FROM inventory_entries e
		 LEFT JOIN products p ON p.id = e.product_id
		 WHERE e.stock < COALESCE(e.min_stock, ?)
		 ORDER BY e.stock ASC, e.id ASC`,
		defaultMinStock,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
