package domain

import (
	"context"
	"errors"
	"time"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	customerdomain "github.com/Antonio-99/catalogo/internal/customer/domain"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
)

// Document is the full-catalog backup payload. Every collection travels
// together so a restore is all or nothing.
type Document struct {
	ExportedAt time.Time                 `json:"exported_at"`
	Categories []categorydomain.Category `json:"categories"`
	Products   []productdomain.Product   `json:"products"`
	Inventory  []inventorydomain.Entry   `json:"inventory"`
	Quotes     []quotedomain.Quote       `json:"quotes"`
	Customers  []customerdomain.Customer `json:"customers"`
	Settings   *settingsdomain.Settings  `json:"settings,omitempty"`
}

type Service interface {
	Export(ctx context.Context) (*Document, error)
	Import(ctx context.Context, doc Document) error

	// Reset wipes every collection and reinstates the seeded defaults.
	Reset(ctx context.Context) error
}

// Filename names a backup after the day it was taken.
func Filename(t time.Time) string {
	return "catalogo-backup-" + t.Format("2006-01-02") + ".json"
}

var ErrInvalidDocument = errors.New("invalid_document")
