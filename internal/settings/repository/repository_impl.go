package repository

import (
	"context"

	"github.com/Antonio-99/catalogo/internal/settings/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Find(ctx context.Context, db *gorm.DB) (*domain.Settings, error) {
	var settings domain.Settings
	err := db.WithContext(ctx).Raw(
		`SELECT id, company_name, company_phone, company_email, company_address,
		        whatsapp_number, currency_code, notifications_enabled,
		        stock_alerts_enabled, default_min_stock, updated_at
		 FROM settings WHERE id = ?`,
		domain.SingletonID,
	).Scan(&settings).Error
	if err != nil {
		return nil, err
	}
	if settings.ID == 0 {
		return nil, nil
	}
	return &settings, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, settings *domain.Settings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	settings.ID = domain.SingletonID
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
