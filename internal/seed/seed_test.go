package seed

import (
	"context"
	"fmt"
	"testing"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	"github.com/Antonio-99/catalogo/internal/config"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSeeder(t *testing.T, cfg config.Config) (*Seeder, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&categorydomain.Category{},
		&productdomain.Product{},
		&inventorydomain.Entry{},
		&settingsdomain.Settings{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	seeder := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Cfg:   cfg,
		GenID: node,
	})
	return seeder, db
}

func TestSeedDefaultCategoriesFixedIDs(t *testing.T) {
	seeder, db := setupSeeder(t, config.Config{DefaultMinStock: 5, DefaultCurrency: "MXN"})

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var categories []categorydomain.Category
	if err := db.Order("id ASC").Find(&categories).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(categories))
	}
	for i, c := range categories {
		if c.ID != int64(i+1) {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, c.ID)
		}
	}
	if categories[0].Name != "Pantallas" || categories[5].Name != "Almacenamiento" {
		t.Fatalf("unexpected category names: %q, %q", categories[0].Name, categories[5].Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	seeder, db := setupSeeder(t, config.Config{DefaultMinStock: 5, DefaultCurrency: "MXN"})
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var categoryCount, settingsCount int64
	if err := db.Model(&categorydomain.Category{}).Count(&categoryCount).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if err := db.Model(&settingsdomain.Settings{}).Count(&settingsCount).Error; err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if categoryCount != 6 {
		t.Fatalf("expected 6 categories after reruns, got %d", categoryCount)
	}
	if settingsCount != 1 {
		t.Fatalf("expected 1 settings row after reruns, got %d", settingsCount)
	}
}

func TestSeedSampleProductsBehindFlag(t *testing.T) {
	seeder, db := setupSeeder(t, config.Config{
		DefaultMinStock: 5,
		DefaultCurrency: "MXN",
		SeedSampleData:  true,
	})

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var productCount, entryCount int64
	if err := db.Model(&productdomain.Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if err := db.Model(&inventorydomain.Entry{}).Count(&entryCount).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if productCount == 0 {
		t.Fatal("expected sample products with flag enabled")
	}
	if entryCount != productCount {
		t.Fatalf("expected one inventory entry per sample product, got %d entries for %d products", entryCount, productCount)
	}
}

func TestSeedSkipsSampleProductsByDefault(t *testing.T) {
	seeder, db := setupSeeder(t, config.Config{DefaultMinStock: 5, DefaultCurrency: "MXN"})

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var productCount int64
	if err := db.Model(&productdomain.Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if productCount != 0 {
		t.Fatalf("expected no sample products without flag, got %d", productCount)
	}
}

func TestSeedSettingsUsesConfigDefaults(t *testing.T) {
	seeder, db := setupSeeder(t, config.Config{DefaultMinStock: 10, DefaultCurrency: "USD"})

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var settings settingsdomain.Settings
	if err := db.Where("id = ?", settingsdomain.SingletonID).Find(&settings).Error; err != nil {
		t.Fatalf("find settings: %v", err)
	}
	if settings.CurrencyCode != "USD" {
		t.Fatalf("expected USD, got %q", settings.CurrencyCode)
	}
	if settings.DefaultMinStock != 10 {
		t.Fatalf("expected default min stock 10, got %d", settings.DefaultMinStock)
	}
}
