package domain

import "time"

// Entry tracks stock for exactly one product. The unique index on
// product_id keeps duplicate entries out of the collection.
type Entry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ProductID int64     `json:"product_id" gorm:"not null;uniqueIndex"`
	Stock     int       `json:"stock" gorm:"not null;default:0"`
	MinStock  *int      `json:"min_stock,omitempty"`
	Location  string    `json:"location" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Entry) TableName() string { return "inventory_entries" }

// EntryWithProduct is the list row joined with the product catalog.
type EntryWithProduct struct {
	Entry
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
}
