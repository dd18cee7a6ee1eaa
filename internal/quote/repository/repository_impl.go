package repository

import (
	"context"

	"github.com/Antonio-99/catalogo/internal/quote/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	return db.WithContext(ctx).Create(quote).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Quote, error) {
	var q domain.Quote
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, customer_name, customer_phone, quantity, price,
		        status, notes, created_at, updated_at
		 FROM quotes WHERE id = ?`,
		id,
	).Scan(&q).Error
	if err != nil {
		return nil, err
	}
	if q.ID == 0 {
		return nil, nil
	}
	return &q, nil
}

func (r *repo) FindWithProduct(ctx context.Context, db *gorm.DB, id int64) (*domain.QuoteWithProduct, error) {
	var q domain.QuoteWithProduct
	err := db.WithContext(ctx).Raw(listQuery+`
WHERE q.id = ?`, id).Scan(&q).Error
	if err != nil {
		return nil, err
	}
	if q.ID == 0 {
		return nil, nil
	}
	return &q, nil
}

const listQuery = `
SELECT q.id, q.product_id, q.customer_name, q.customer_phone, q.quantity,
       q.price, q.status, q.notes, q.created_at, q.updated_at,
       COALESCE(p.name, '') AS product_name,
       (p.id IS NULL) AS product_deleted
FROM quotes q
LEFT JOIN products p ON p.id = q.product_id`

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.QuoteWithProduct, error) {
	var items []domain.QuoteWithProduct
	err := db.WithContext(ctx).Raw(listQuery + `
ORDER BY q.created_at ASC, q.id ASC`).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByStatus(ctx context.Context, db *gorm.DB, status string) ([]domain.QuoteWithProduct, error) {
	var items []domain.QuoteWithProduct
	err := db.WithContext(ctx).Raw(listQuery+`
WHERE q.status = ?
ORDER BY q.created_at ASC, q.id ASC`, status).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	if quote == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE quotes
		 SET customer_name = ?, customer_phone = ?, quantity = ?, price = ?,
		     status = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		quote.CustomerName,
		quote.CustomerPhone,
		quote.Quantity,
		quote.Price,
		quote.Status,
		quote.Notes,
		quote.UpdatedAt,
		quote.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id = ?`, id).Error
}
