package repository

import (
	"context"
	"strings"

	"github.com/Antonio-99/catalogo/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, phone, email, address, notes, created_at, updated_at
		 FROM customers WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Customer, error) {
	var items []domain.Customer
	err := db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, query string) ([]domain.Customer, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var items []domain.Customer
	err := db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?`, like, like, like).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	if customer == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE customers
		 SET name = ?, phone = ?, email = ?, address = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Notes,
		customer.UpdatedAt,
		customer.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM customers WHERE id = ?`, id).Error
}
