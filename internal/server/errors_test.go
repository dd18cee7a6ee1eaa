package server

import (
	"errors"
	"net/http"
	"testing"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	exportdomain "github.com/Antonio-99/catalogo/internal/export/domain"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"gorm.io/gorm"
)

func TestMapErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"category not found", categorydomain.ErrNotFound, http.StatusNotFound},
		{"product not found", productdomain.ErrNotFound, http.StatusNotFound},
		{"quote not found", quotedomain.ErrNotFound, http.StatusNotFound},
		{"gorm record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"category in use", categorydomain.ErrCategoryInUse, http.StatusConflict},
		{"invalid name", categorydomain.ErrInvalidName, http.StatusBadRequest},
		{"invalid product category", productdomain.ErrInvalidCategory, http.StatusBadRequest},
		{"invalid stock", inventorydomain.ErrInvalidStock, http.StatusBadRequest},
		{"invalid quote quantity", quotedomain.ErrInvalidQuantity, http.StatusBadRequest},
		{"invalid currency", settingsdomain.ErrInvalidCurrency, http.StatusBadRequest},
		{"invalid backup document", exportdomain.ErrInvalidDocument, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := mapError(tc.err)
			if status != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, status)
			}
		})
	}
}

func TestMapErrorValidationPayload(t *testing.T) {
	status, payload := mapError(productdomain.ErrInvalidSKU)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if payload.Type != "validation_error" {
		t.Fatalf("expected validation_error, got %q", payload.Type)
	}
	if len(payload.Errors) != 1 || payload.Errors[0].Field != "sku" {
		t.Fatalf("unexpected validation detail: %+v", payload.Errors)
	}
}
