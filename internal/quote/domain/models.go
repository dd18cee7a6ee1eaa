package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known quote statuses. The sale lifecycle ships with these labels,
// but status is free-form: unknown labels are stored and filtered verbatim.
const (
	StatusQuoted    = "cotizado"
	StatusSold      = "vendido"
	StatusDelivered = "entregado"
)

// Quote records a sale inquiry. Price is a snapshot taken at creation
// time so later catalog edits never change what was quoted.
type Quote struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	ProductID     int64           `json:"product_id" gorm:"not null;index"`
	CustomerName  string          `json:"customer_name" gorm:"type:text;not null"`
	CustomerPhone string          `json:"customer_phone" gorm:"type:text"`
	Quantity      int             `json:"quantity" gorm:"not null;default:1"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Status        string          `json:"status" gorm:"type:text;not null"`
	Notes         *string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null"`
}

func (Quote) TableName() string { return "quotes" }

// QuoteWithProduct is the list row joined with the product catalog. A
// quote survives its product; ProductName is empty when that happens.
type QuoteWithProduct struct {
	Quote
	ProductName    string `json:"product_name"`
	ProductDeleted bool   `json:"product_deleted"`
}
