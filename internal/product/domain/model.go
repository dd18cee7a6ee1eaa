package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	CategoryID  int64             `json:"category_id" gorm:"not null;index"`
	Name        string            `json:"name" gorm:"type:text;not null"`
	Brand       string            `json:"brand" gorm:"type:text"`
	SKU         string            `json:"sku" gorm:"column:sku;type:text;not null"`
	PartNumber  *string           `json:"part_number,omitempty" gorm:"type:text"`
	Price       decimal.Decimal   `json:"price" gorm:"type:decimal(12,2);not null"`
	Description *string           `json:"description,omitempty" gorm:"type:text"`
	Icon        string            `json:"icon" gorm:"type:text"`
	Active      bool              `json:"active" gorm:"not null;default:true"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// DefaultIcon is applied when a product is created without an icon reference.
const DefaultIcon = "fas fa-cube"
