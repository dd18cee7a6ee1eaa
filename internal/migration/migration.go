package migration

import (
	"context"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	customerdomain "github.com/Antonio-99/catalogo/internal/customer/domain"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	"github.com/Antonio-99/catalogo/internal/seed"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date and seeds the defaults.
func Migrate(db *gorm.DB, log *zap.Logger, seeder *seed.Seeder) error {
	log = log.Named("migration")

	err := db.AutoMigrate(
		&categorydomain.Category{},
		&productdomain.Product{},
		&inventorydomain.Entry{},
		&quotedomain.Quote{},
		&customerdomain.Customer{},
		&settingsdomain.Settings{},
	)
	if err != nil {
		return err
	}
	log.Info("schema up to date")

	return seeder.Run(context.Background())
}

var Module = fx.Module("migration",
	fx.Invoke(Migrate),
)
