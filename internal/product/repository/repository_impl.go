package repository

import (
	"context"
	"strings"

	"github.com/Antonio-99/catalogo/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, category_id, name, brand, sku, part_number, price, description,
		        icon, active, metadata, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.Product, error) {
	var items []domain.Product
	stmt := db.WithContext(ctx).Model(&domain.Product{})

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		like := "%" + q + "%"
		stmt = stmt.Where(
			`LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(COALESCE(part_number, '')) LIKE ?
			 OR LOWER(brand) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?`,
			like, like, like, like, like,
		)
	}
	if filter.CategoryID != nil {
		stmt = stmt.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Brand != "" {
		stmt = stmt.Where("brand = ?", filter.Brand)
	}
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}

	// Insertion order is the collection order.
	err := stmt.Order("created_at ASC, id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET category_id = ?, name = ?, brand = ?, sku = ?, part_number = ?, price = ?,
		     description = ?, icon = ?, active = ?, metadata = ?, updated_at = ?
		 WHERE id = ?`,
		product.CategoryID,
		product.Name,
		product.Brand,
		product.SKU,
		product.PartNumber,
		product.Price,
		product.Description,
		product.Icon,
		product.Active,
		product.Metadata,
		product.UpdatedAt,
		product.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id).Error
}

func (r *repo) Brands(ctx context.Context, db *gorm.DB) ([]string, error) {
	var brands []string
	err := db.WithContext(ctx).Raw(
		`SELECT DISTINCT brand FROM products WHERE brand <> ''`,
	).Scan(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}
