package seed

import (
	"context"
	"time"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	"github.com/Antonio-99/catalogo/internal/config"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultCategories ship with fixed ids so fresh installations agree on
// them. User-created categories get generated ids.
var defaultCategories = []categorydomain.Category{
	{ID: 1, Name: "Pantallas", Description: "Pantallas y displays para laptop", Icon: "fas fa-desktop"},
	{ID: 2, Name: "Teclados", Description: "Teclados de reemplazo", Icon: "fas fa-keyboard"},
	{ID: 3, Name: "Baterías", Description: "Baterías para laptop", Icon: "fas fa-battery-full"},
	{ID: 4, Name: "Cargadores", Description: "Cargadores y adaptadores de corriente", Icon: "fas fa-plug"},
	{ID: 5, Name: "Memorias", Description: "Memorias RAM", Icon: "fas fa-memory"},
	{ID: 6, Name: "Almacenamiento", Description: "Discos duros y unidades SSD", Icon: "fas fa-hdd"},
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	GenID *snowflake.Node
}

type Seeder struct {
	db    *gorm.DB
	log   *zap.Logger
	cfg   config.Config
	genID *snowflake.Node
}

func New(p Params) *Seeder {
	return &Seeder{
		db:    p.DB,
		log:   p.Log.Named("seed"),
		cfg:   p.Cfg,
		genID: p.GenID,
	}
}

// Run populates empty tables with their defaults. Tables that already
// hold rows are left alone, so running it repeatedly is safe.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	if err := s.seedSettings(ctx); err != nil {
		return err
	}
	if s.cfg.SeedSampleData {
		if err := s.seedSampleProducts(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&categorydomain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	categories := make([]categorydomain.Category, len(defaultCategories))
	for i, c := range defaultCategories {
		c.CreatedAt = now
		c.UpdatedAt = now
		categories[i] = c
	}

	if err := s.db.WithContext(ctx).Create(&categories).Error; err != nil {
		return err
	}
	s.log.Info("seeded default categories", zap.Int("count", len(categories)))
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&settingsdomain.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := settingsdomain.Settings{
		ID:                   settingsdomain.SingletonID,
		CurrencyCode:         s.cfg.DefaultCurrency,
		NotificationsEnabled: true,
		StockAlertsEnabled:   true,
		DefaultMinStock:      s.cfg.DefaultMinStock,
		UpdatedAt:            time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return err
	}
	s.log.Info("seeded default settings")
	return nil
}

type sampleProduct struct {
	categoryID int64
	name       string
	brand      string
	sku        string
	price      string
	stock      int
}

var sampleProducts = []sampleProduct{
	{1, "Pantalla 15.6\" Full HD", "BOE", "PAN-156-FHD", "1250.00", 8},
	{2, "Teclado HP Pavilion 15", "HP", "TEC-HP-PAV15", "350.00", 12},
	{3, "Batería Dell Inspiron 15", "Dell", "BAT-DELL-I15", "890.00", 5},
	{4, "Cargador Lenovo 65W USB-C", "Lenovo", "CAR-LEN-65W", "420.00", 15},
	{5, "Memoria RAM 8GB DDR4", "Kingston", "MEM-KIN-8GB", "560.00", 20},
	{6, "SSD 480GB SATA", "Crucial", "ALM-CRU-480", "780.00", 10},
}

func (s *Seeder) seedSampleProducts(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&productdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sp := range sampleProducts {
			price, err := decimal.NewFromString(sp.price)
			if err != nil {
				return err
			}

			product := productdomain.Product{
				ID:         s.genID.Generate().Int64(),
				CategoryID: sp.categoryID,
				Name:       sp.name,
				Brand:      sp.brand,
				SKU:        sp.sku,
				Price:      price,
				Icon:       productdomain.DefaultIcon,
				Active:     true,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}

			entry := inventorydomain.Entry{
				ID:        s.genID.Generate().Int64(),
				ProductID: product.ID,
				Stock:     sp.stock,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		s.log.Info("seeded sample products", zap.Int("count", len(sampleProducts)))
		return nil
	})
}
