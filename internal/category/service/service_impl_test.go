package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	"github.com/Antonio-99/catalogo/internal/category/repository"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCategoryService(t *testing.T) (categorydomain.Service, *gorm.DB, *snowflake.Node) {
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

	if err := db.AutoMigrate(&categorydomain.Category{}, &productdomain.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db, node
}

func TestCreateCategoryDefaultsIcon(t *testing.T) {
	svc, _, _ := setupCategoryService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "  Pantallas  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Name != "Pantallas" {
		t.Fatalf("expected trimmed name, got %q", resp.Name)
	}
	if resp.Icon != categorydomain.DefaultIcon {
		t.Fatalf("expected default icon, got %q", resp.Icon)
	}
}

func TestCreateCategoryRejectsEmptyName(t *testing.T) {
	svc, _, _ := setupCategoryService(t)

	if _, err := svc.Create(context.Background(), categorydomain.CreateRequest{Name: "   "}); err != categorydomain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	svc, _, node := setupCategoryService(t)

	if _, err := svc.Get(context.Background(), node.Generate().String()); err != categorydomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	svc, _, _ := setupCategoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "Teclados", Description: "original"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	desc := "teclados de reemplazo"
	updated, err := svc.Update(ctx, categorydomain.UpdateRequest{ID: created.ID, Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Teclados" {
		t.Fatalf("name should be untouched, got %q", updated.Name)
	}
	if updated.Description != desc {
		t.Fatalf("expected updated description, got %q", updated.Description)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc, _, node := setupCategoryService(t)

	name := "Nada"
	_, err := svc.Update(context.Background(), categorydomain.UpdateRequest{ID: node.Generate().String(), Name: &name})
	if err != categorydomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	svc, db, node := setupCategoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "Baterías"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	categoryID, err := snowflake.ParseString(created.ID)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}

	now := time.Now().UTC()
	product := productdomain.Product{
		ID:         node.Generate().Int64(),
		CategoryID: categoryID.Int64(),
		Name:       "Batería Dell",
		SKU:        "BAT-001",
		Price:      decimal.NewFromInt(500),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("insert product: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != categorydomain.ErrCategoryInUse {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	// The category must still exist after the blocked delete.
	if _, err := svc.Get(ctx, created.ID); err != nil {
		t.Fatalf("category should survive blocked delete: %v", err)
	}

	if err := db.Exec(`DELETE FROM products WHERE id = ?`, product.ID).Error; err != nil {
		t.Fatalf("cleanup product: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete after products removed: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); err != categorydomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
