package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (inventorydomain.Repository, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&productdomain.Product{}, &inventorydomain.Entry{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return Provide(), db, node
}

func createEntry(t *testing.T, db *gorm.DB, node *snowflake.Node, name string, stock int, minStock *int) inventorydomain.Entry {
	t.Helper()

	now := time.Now().UTC()
	product := productdomain.Product{
		ID:         node.Generate().Int64(),
		CategoryID: 1,
		Name:       name,
		SKU:        fmt.Sprintf("SKU-%d", node.Generate().Int64()),
		Price:      decimal.NewFromInt(100),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, db.Create(&product).Error)

	entry := inventorydomain.Entry{
		ID:        node.Generate().Int64(),
		ProductID: product.ID,
		Stock:     stock,
		MinStock:  minStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

func TestFindAllJoinsProductColumns(t *testing.T) {
	repo, db, node := setupRepo(t)
	ctx := context.Background()

	createEntry(t, db, node, "Pantalla HP", 6, nil)

	items, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Pantalla HP", items[0].ProductName)
	require.NotEmpty(t, items[0].ProductSKU)
}

func TestLowStockAppliesDefaultMinimum(t *testing.T) {
	repo, db, node := setupRepo(t)
	ctx := context.Background()

	own := 2
	createEntry(t, db, node, "Con mínimo propio", 1, &own)  // 1 < 2, low
	createEntry(t, db, node, "Al mínimo propio", 2, &own)   // 2 < 2 is false
	createEntry(t, db, node, "Sin mínimo bajo", 4, nil)     // 4 < 5, low by default
	createEntry(t, db, node, "Sin mínimo al corte", 5, nil) // 5 < 5 is false

	items, err := repo.LowStock(ctx, db, 5)
	require.NoError(t, err)
	require.Len(t, items, 2)

	names := []string{items[0].ProductName, items[1].ProductName}
	require.Contains(t, names, "Con mínimo propio")
	require.Contains(t, names, "Sin mínimo bajo")
}

func TestDeleteByProductID(t *testing.T) {
	repo, db, node := setupRepo(t)
	ctx := context.Background()

	entry := createEntry(t, db, node, "Cargador", 3, nil)
	require.NoError(t, repo.DeleteByProductID(ctx, db, entry.ProductID))

	found, err := repo.FindByProductID(ctx, db, entry.ProductID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestUniqueProductIndex(t *testing.T) {
	_, db, node := setupRepo(t)

	entry := createEntry(t, db, node, "Memoria", 3, nil)
	dup := inventorydomain.Entry{
		ID:        node.Generate().Int64(),
		ProductID: entry.ProductID,
		Stock:     9,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.Error(t, db.Create(&dup).Error)
}
