package service

import (
	"context"
	"time"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	customerdomain "github.com/Antonio-99/catalogo/internal/customer/domain"
	"github.com/Antonio-99/catalogo/internal/export/domain"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	"github.com/Antonio-99/catalogo/internal/seed"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Seeder *seed.Seeder
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	seeder *seed.Seeder
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("export.service"),
		seeder: p.Seeder,
	}
}

func (s *Service) Export(ctx context.Context) (*domain.Document, error) {
	doc := domain.Document{
		ExportedAt: time.Now().UTC(),
		Categories: []categorydomain.Category{},
		Products:   []productdomain.Product{},
		Inventory:  []inventorydomain.Entry{},
		Quotes:     []quotedomain.Quote{},
		Customers:  []customerdomain.Customer{},
	}

	db := s.db.WithContext(ctx)
	if err := db.Order("created_at ASC, id ASC").Find(&doc.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC, id ASC").Find(&doc.Products).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC, id ASC").Find(&doc.Inventory).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC, id ASC").Find(&doc.Quotes).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC, id ASC").Find(&doc.Customers).Error; err != nil {
		return nil, err
	}

	var settings settingsdomain.Settings
	if err := db.Where("id = ?", settingsdomain.SingletonID).Find(&settings).Error; err != nil {
		return nil, err
	}
	if settings.ID != 0 {
		doc.Settings = &settings
	}

	return &doc, nil
}

// Import replaces each collection the document carries and leaves absent
// collections untouched. A partial document is valid as long as the
// resulting store stays referentially intact.
func (s *Service) Import(ctx context.Context, doc domain.Document) error {
	for _, c := range doc.Categories {
		if c.ID == 0 || c.Name == "" {
			return domain.ErrInvalidDocument
		}
	}
	for _, p := range doc.Products {
		if p.ID == 0 || p.Name == "" {
			return domain.ErrInvalidDocument
		}
	}
	for _, e := range doc.Inventory {
		if e.ID == 0 || e.ProductID == 0 {
			return domain.ErrInvalidDocument
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if doc.Categories != nil {
			if err := replace(tx, "categories", doc.Categories); err != nil {
				return err
			}
		}
		if doc.Products != nil {
			if err := replace(tx, "products", doc.Products); err != nil {
				return err
			}
		}
		if doc.Inventory != nil {
			if err := replace(tx, "inventory_entries", doc.Inventory); err != nil {
				return err
			}
		}
		if doc.Quotes != nil {
			if err := replace(tx, "quotes", doc.Quotes); err != nil {
				return err
			}
		}
		if doc.Customers != nil {
			if err := replace(tx, "customers", doc.Customers); err != nil {
				return err
			}
		}
		if doc.Settings != nil {
			settings := *doc.Settings
			settings.ID = settingsdomain.SingletonID
			if err := tx.Exec(`DELETE FROM settings`).Error; err != nil {
				return err
			}
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
		}

		return checkIntegrity(tx)
	})
	if err != nil {
		return err
	}

	s.log.Info("imported catalog backup",
		zap.Int("categories", len(doc.Categories)),
		zap.Int("products", len(doc.Products)),
		zap.Int("quotes", len(doc.Quotes)),
	)
	return nil
}

func replace[T any](tx *gorm.DB, table string, rows []T) error {
	if err := tx.Exec(`DELETE FROM ` + table).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// checkIntegrity verifies the store after a partial replace: every product
// must reference a category and every inventory entry a product. Quotes
// are allowed to dangle.
func checkIntegrity(tx *gorm.DB) error {
	var orphans int64
	err := tx.Raw(
		`SELECT COUNT(*) FROM products p
		 LEFT JOIN categories c ON c.id = p.category_id
		 WHERE c.id IS NULL`,
	).Scan(&orphans).Error
	if err != nil {
		return err
	}
	if orphans > 0 {
		return domain.ErrInvalidDocument
	}

	err = tx.Raw(
		`SELECT COUNT(*) FROM inventory_entries e
		 LEFT JOIN products p ON p.id = e.product_id
		 WHERE p.id IS NULL`,
	).Scan(&orphans).Error
	if err != nil {
		return err
	}
	if orphans > 0 {
		return domain.ErrInvalidDocument
	}
	return nil
}

func (s *Service) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(wipe)
	if err != nil {
		return err
	}

	s.log.Warn("catalog reset, reseeding defaults")
	return s.seeder.Run(ctx)
}

func wipe(tx *gorm.DB) error {
	for _, table := range []string{
		"inventory_entries", "quotes", "products", "customers", "categories", "settings",
	} {
		if err := tx.Exec(`DELETE FROM ` + table).Error; err != nil {
			return err
		}
	}
	return nil
}
