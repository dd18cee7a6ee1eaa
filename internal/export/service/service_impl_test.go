package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	"github.com/Antonio-99/catalogo/internal/config"
	exportdomain "github.com/Antonio-99/catalogo/internal/export/domain"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	"github.com/Antonio-99/catalogo/internal/seed"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupExportService(t *testing.T) (exportdomain.Service, *gorm.DB, *snowflake.Node) {
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
		&quotedomain.Quote{},
		&settingsdomain.Settings{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.AutoMigrate(&customerModel{}); err != nil {
		t.Fatalf("migrate customers: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	seeder := seed.New(seed.Params{
		DB:  db,
		Log: zap.NewNop(),
		Cfg: config.Config{
			DefaultMinStock: 5,
			DefaultCurrency: "MXN",
		},
		GenID: node,
	})

	svc := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		Seeder: seeder,
	})
	return svc, db, node
}

// customerModel mirrors the customers table without importing the whole
// customer package into this test.
type customerModel struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerModel) TableName() string { return "customers" }

func seedCatalog(t *testing.T, db *gorm.DB, node *snowflake.Node) (categorydomain.Category, productdomain.Product) {
	t.Helper()

	now := time.Now().UTC()
	category := categorydomain.Category{
		ID:        node.Generate().Int64(),
		Name:      "Memorias",
		Icon:      categorydomain.DefaultIcon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	product := productdomain.Product{
		ID:         node.Generate().Int64(),
		CategoryID: category.ID,
		Name:       "RAM 8GB DDR4",
		SKU:        "MEM-8GB",
		Price:      decimal.NewFromInt(560),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return category, product
}

func TestExportImportRoundtrip(t *testing.T) {
	svc, db, node := setupExportService(t)
	ctx := context.Background()

	_, product := seedCatalog(t, db, node)

	doc, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(doc.Categories) != 1 || len(doc.Products) != 1 {
		t.Fatalf("unexpected export shape: %d categories, %d products", len(doc.Categories), len(doc.Products))
	}
	if doc.ExportedAt.IsZero() {
		t.Fatal("expected exported_at to be set")
	}

	// Wipe through a fresh import of the same document.
	if err := svc.Import(ctx, *doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	restored, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if len(restored.Products) != 1 {
		t.Fatalf("expected 1 product after roundtrip, got %d", len(restored.Products))
	}
	if restored.Products[0].ID != product.ID {
		t.Fatalf("expected product id %d preserved, got %d", product.ID, restored.Products[0].ID)
	}
}

func TestImportLeavesAbsentCollectionsUntouched(t *testing.T) {
	svc, db, node := setupExportService(t)
	ctx := context.Background()

	_, product := seedCatalog(t, db, node)

	now := time.Now().UTC()
	quote := quotedomain.Quote{
		ID:           node.Generate().Int64(),
		ProductID:    product.ID,
		CustomerName: "Patricia",
		Quantity:     1,
		Price:        product.Price,
		Status:       quotedomain.StatusQuoted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&quote).Error; err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	doc, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// A document without a quotes collection replaces everything else and
	// leaves the existing quotes alone.
	doc.Quotes = nil
	doc.Customers = nil
	if err := svc.Import(ctx, *doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	var quoteCount int64
	if err := db.Model(&quotedomain.Quote{}).Count(&quoteCount).Error; err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if quoteCount != 1 {
		t.Fatalf("expected existing quote untouched, got %d quotes", quoteCount)
	}

	var fetched quotedomain.Quote
	if err := db.Where("id = ?", quote.ID).Find(&fetched).Error; err != nil {
		t.Fatalf("find quote: %v", err)
	}
	if fetched.CustomerName != quote.CustomerName {
		t.Fatalf("expected quote preserved verbatim, got customer %q", fetched.CustomerName)
	}
}

func TestImportReplacesOnlyPresentCollections(t *testing.T) {
	svc, db, node := setupExportService(t)
	ctx := context.Background()

	category, product := seedCatalog(t, db, node)

	now := time.Now().UTC()
	doc := exportdomain.Document{
		ExportedAt: now,
		Products: []productdomain.Product{
			{
				ID:         node.Generate().Int64(),
				CategoryID: category.ID,
				Name:       "SSD 480GB",
				SKU:        "SSD-480",
				Price:      decimal.NewFromInt(780),
				Active:     true,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		},
	}
	if err := svc.Import(ctx, doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	var products []productdomain.Product
	if err := db.Find(&products).Error; err != nil {
		t.Fatalf("find products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected products collection replaced, got %d rows", len(products))
	}
	if products[0].ID == product.ID {
		t.Fatal("expected the old product to be gone")
	}

	var categoryCount int64
	if err := db.Model(&categorydomain.Category{}).Count(&categoryCount).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if categoryCount != 1 {
		t.Fatalf("expected categories untouched, got %d", categoryCount)
	}
}

func TestImportRejectsDanglingCategoryReference(t *testing.T) {
	svc, _, node := setupExportService(t)

	now := time.Now().UTC()
	doc := exportdomain.Document{
		ExportedAt: now,
		Products: []productdomain.Product{
			{
				ID:         node.Generate().Int64(),
				CategoryID: node.Generate().Int64(),
				Name:       "Sin categoría",
				SKU:        "X-1",
				Price:      decimal.NewFromInt(1),
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		},
	}
	if err := svc.Import(context.Background(), doc); err != exportdomain.ErrInvalidDocument {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestImportRejectsInventoryWithoutProduct(t *testing.T) {
	svc, _, node := setupExportService(t)

	now := time.Now().UTC()
	doc := exportdomain.Document{
		ExportedAt: now,
		Inventory: []inventorydomain.Entry{
			{
				ID:        node.Generate().Int64(),
				ProductID: node.Generate().Int64(),
				Stock:     1,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}
	if err := svc.Import(context.Background(), doc); err != exportdomain.ErrInvalidDocument {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestResetReinstatesDefaults(t *testing.T) {
	svc, db, node := setupExportService(t)
	ctx := context.Background()

	seedCatalog(t, db, node)

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var categories []categorydomain.Category
	if err := db.Order("id ASC").Find(&categories).Error; err != nil {
		t.Fatalf("find categories: %v", err)
	}
	if len(categories) != 6 {
		t.Fatalf("expected 6 default categories after reset, got %d", len(categories))
	}
	for i, c := range categories {
		if c.ID != int64(i+1) {
			t.Fatalf("expected fixed id %d, got %d", i+1, c.ID)
		}
	}

	var productCount int64
	if err := db.Model(&productdomain.Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if productCount != 0 {
		t.Fatalf("expected no products after reset, got %d", productCount)
	}

	var settings settingsdomain.Settings
	if err := db.Where("id = ?", settingsdomain.SingletonID).Find(&settings).Error; err != nil {
		t.Fatalf("find settings: %v", err)
	}
	if settings.ID == 0 {
		t.Fatal("expected settings row after reset")
	}
	if settings.CurrencyCode != "MXN" {
		t.Fatalf("expected default currency MXN, got %q", settings.CurrencyCode)
	}
}

func TestBackupFilename(t *testing.T) {
	ts := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	if got := exportdomain.Filename(ts); got != "catalogo-backup-2026-09-01.json" {
		t.Fatalf("unexpected filename %q", got)
	}
}
