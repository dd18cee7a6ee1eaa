package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Get(ctx context.Context) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
}

type UpdateRequest struct {
	CompanyName          *string `json:"company_name"`
	CompanyPhone         *string `json:"company_phone"`
	CompanyEmail         *string `json:"company_email"`
	CompanyAddress       *string `json:"company_address"`
	WhatsAppNumber       *string `json:"whatsapp_number"`
	CurrencyCode         *string `json:"currency_code"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	StockAlertsEnabled   *bool   `json:"stock_alerts_enabled"`
	DefaultMinStock      *int    `json:"default_min_stock"`
}

type Response struct {
	CompanyName          string    `json:"company_name"`
	CompanyPhone         string    `json:"company_phone"`
	CompanyEmail         string    `json:"company_email"`
	CompanyAddress       string    `json:"company_address"`
	WhatsAppNumber       string    `json:"whatsapp_number"`
	CurrencyCode         string    `json:"currency_code"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	StockAlertsEnabled   bool      `json:"stock_alerts_enabled"`
	DefaultMinStock      int       `json:"default_min_stock"`
	UpdatedAt            time.Time `json:"updated_at"`
}

var (
	ErrInvalidMinStock = errors.New("invalid_min_stock")
	ErrInvalidCurrency = errors.New("invalid_currency")
)
