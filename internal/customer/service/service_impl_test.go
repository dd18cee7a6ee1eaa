package service

import (
	"context"
	"fmt"
	"testing"

	customerdomain "github.com/Antonio-99/catalogo/internal/customer/domain"
	"github.com/Antonio-99/catalogo/internal/customer/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCustomerService(t *testing.T) (customerdomain.Service, *snowflake.Node) {
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

	if err := db.AutoMigrate(&customerdomain.Customer{}); err != nil {
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
	return svc, node
}

func TestCustomerCRUD(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, customerdomain.CreateRequest{
		Name:  "María González",
		Phone: "81 1111 2222",
		Email: "maria@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	phone := "81 3333 4444"
	updated, err := svc.Update(ctx, customerdomain.UpdateRequest{ID: created.ID, Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("expected phone %q, got %q", phone, updated.Phone)
	}
	if updated.Name != "María González" {
		t.Fatalf("name should be untouched, got %q", updated.Name)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); err != customerdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCustomerCreateRejectsEmptyName(t *testing.T) {
	svc, _ := setupCustomerService(t)

	if _, err := svc.Create(context.Background(), customerdomain.CreateRequest{Name: "  "}); err != customerdomain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestCustomerSearch(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	for _, name := range []string{"María González", "José Martínez", "Ana María López"} {
		if _, err := svc.Create(ctx, customerdomain.CreateRequest{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	matches, err := svc.List(ctx, "maría")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for 'maría', got %d", len(matches))
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(all))
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	svc, node := setupCustomerService(t)

	if err := svc.Delete(context.Background(), node.Generate().String()); err != customerdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
