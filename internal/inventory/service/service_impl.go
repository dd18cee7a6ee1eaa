package service

import (
	"context"
	"strings"
	"time"

	"github.com/Antonio-99/catalogo/internal/inventory/domain"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	SettingsSvc settingsdomain.Service
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	settingsSvc settingsdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("inventory.service"),
		repo:        p.Repo,
		settingsSvc: p.SettingsSvc,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	entryID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	entry, err := s.repo.FindByID(ctx, s.db, entryID.Int64())
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, domain.ErrInvalidStock
		}
		entry.Stock = *req.Stock
	}
	if req.MinStock != nil {
		if *req.MinStock < 0 {
			return nil, domain.ErrInvalidMinStock
		}
		entry.MinStock = req.MinStock
	}
	if req.Location != nil {
		entry.Location = strings.TrimSpace(*req.Location)
	}

	entry.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, entry); err != nil {
		return nil, err
	}

	resp := toResponse(domain.EntryWithProduct{Entry: *entry})
	return &resp, nil
}

// LowStock reports entries strictly below their minimum. An entry sitting
// exactly at its minimum is not low.
func (s *Service) LowStock(ctx context.Context) ([]domain.Response, error) {
	settings, err := s.settingsSvc.Get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.LowStock(ctx, s.db, settings.DefaultMinStock)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func toResponses(items []domain.EntryWithProduct) []domain.Response {
	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item))
	}
	return resp
}

func toResponse(e domain.EntryWithProduct) domain.Response {
	return domain.Response{
		ID:          snowflake.ID(e.ID).String(),
		ProductID:   snowflake.ID(e.ProductID).String(),
		ProductName: e.ProductName,
		ProductSKU:  e.ProductSKU,
		Stock:       e.Stock,
		MinStock:    e.MinStock,
		Location:    e.Location,
		UpdatedAt:   e.UpdatedAt,
	}
}
