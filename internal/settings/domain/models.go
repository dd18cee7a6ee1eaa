package domain

import "time"

// SingletonID is the fixed primary key of the one settings row.
const SingletonID = 1

type Settings struct {
	ID                   int64     `json:"id" gorm:"primaryKey"`
	CompanyName          string    `json:"company_name" gorm:"type:text"`
	CompanyPhone         string    `json:"company_phone" gorm:"type:text"`
	CompanyEmail         string    `json:"company_email" gorm:"type:text"`
	CompanyAddress       string    `json:"company_address" gorm:"type:text"`
	WhatsAppNumber       string    `json:"whatsapp_number" gorm:"column:whatsapp_number;type:text"`
	CurrencyCode         string    `json:"currency_code" gorm:"type:text"`
	NotificationsEnabled bool      `json:"notifications_enabled" gorm:"not null;default:true"`
	StockAlertsEnabled   bool      `json:"stock_alerts_enabled" gorm:"not null;default:true"`
	DefaultMinStock      int       `json:"default_min_stock" gorm:"not null;default:5"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"not null"`
}

func (Settings) TableName() string { return "settings" }
