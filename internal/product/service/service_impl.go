package service

import (
	"context"
	"strings"
	"time"

	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	"github.com/Antonio-99/catalogo/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	GenID         *snowflake.Node
	Repo          domain.Repository
	CategoryRepo  categorydomain.Repository
	InventoryRepo inventorydomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          domain.Repository
	categoryRepo  categorydomain.Repository
	inventoryRepo inventorydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("product.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		categoryRepo:  p.CategoryRepo,
		inventoryRepo: p.InventoryRepo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	filter := domain.Filter{
		Query:  req.Query,
		Brand:  strings.TrimSpace(req.Brand),
		Active: req.Active,
	}
	if id := strings.TrimSpace(req.CategoryID); id != "" {
		categoryID, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidCategory
		}
		cid := categoryID.Int64()
		filter.CategoryID = &cid
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		return nil, domain.ErrInvalidSKU
	}

	categoryID, err := snowflake.ParseString(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, domain.ErrInvalidCategory
	}

	if req.Price == nil || req.Price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	price := *req.Price
	if req.Stock != nil && *req.Stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		return nil, domain.ErrInvalidStock
	}

	icon := strings.TrimSpace(req.Icon)
	if icon == "" {
		icon = domain.DefaultIcon
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          s.genID.Generate().Int64(),
		CategoryID:  categoryID.Int64(),
		Name:        name,
		Brand:       strings.TrimSpace(req.Brand),
		SKU:         sku,
		PartNumber:  trimPtr(req.PartNumber),
		Price:       price,
		Description: trimPtr(req.Description),
		Icon:        icon,
		Active:      active,
		Metadata:    datatypes.JSONMap(req.Metadata),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.categoryRepo.FindByID(ctx, tx, product.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrInvalidCategory
		}

		if err := s.repo.Insert(ctx, tx, product); err != nil {
			return err
		}

		if req.Stock != nil {
			entry := &inventorydomain.Entry{
				ID:        s.genID.Generate().Int64(),
				ProductID: product.ID,
				Stock:     *req.Stock,
				MinStock:  req.MinStock,
				Location:  strings.TrimSpace(req.Location),
				CreatedAt: now,
				UpdatedAt: now,
			}
			return s.inventoryRepo.Insert(ctx, tx, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(product)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.SKU != nil {
		sku := strings.TrimSpace(*req.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidSKU
		}
		item.SKU = sku
	}
	if req.CategoryID != nil {
		categoryID, err := snowflake.ParseString(strings.TrimSpace(*req.CategoryID))
		if err != nil {
			return nil, domain.ErrInvalidCategory
		}
		category, err := s.categoryRepo.FindByID(ctx, s.db, categoryID.Int64())
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidCategory
		}
		item.CategoryID = categoryID.Int64()
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.Brand != nil {
		item.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.PartNumber != nil {
		item.PartNumber = trimPtr(req.PartNumber)
	}
	if req.Description != nil {
		item.Description = trimPtr(req.Description)
	}
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		if icon == "" {
			icon = domain.DefaultIcon
		}
		item.Icon = icon
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if req.Metadata != nil {
		item.Metadata = datatypes.JSONMap(req.Metadata)
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

// Delete removes the product and its inventory entry together. Quotes that
// reference the product keep their snapshot and are left untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindByID(ctx, tx, productID.Int64())
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if err := s.inventoryRepo.DeleteByProductID(ctx, tx, productID.Int64()); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, productID.Int64())
	})
}

func (s *Service) Brands(ctx context.Context) ([]string, error) {
	return s.repo.Brands(ctx, s.db)
}

func toResponse(p *domain.Product) domain.Response {
	return domain.Response{
		ID:          snowflake.ID(p.ID).String(),
		CategoryID:  snowflake.ID(p.CategoryID).String(),
		Name:        p.Name,
		Brand:       p.Brand,
		SKU:         p.SKU,
		PartNumber:  p.PartNumber,
		Price:       p.Price,
		Description: p.Description,
		Icon:        p.Icon,
		Active:      p.Active,
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
