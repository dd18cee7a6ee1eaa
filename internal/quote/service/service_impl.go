package service

import (
	"context"
	"strings"
	"time"

	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	"github.com/Antonio-99/catalogo/internal/quote/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	ProductRepo productdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	productRepo productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("quote.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		productRepo: p.ProductRepo,
	}
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Response, error) {
	status = strings.TrimSpace(status)

	var (
		items []domain.QuoteWithProduct
		err   error
	)
	if status == "" {
		items, err = s.repo.FindAll(ctx, s.db)
	} else {
		items, err = s.repo.FindByStatus(ctx, s.db, status)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	quoteID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindWithProduct(ctx, s.db, quoteID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(*item)
	return &resp, nil
}

// Create snapshots the product price into the quote unless the caller
// supplies one explicitly.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, domain.ErrInvalidCustomer
	}

	productID, err := snowflake.ParseString(strings.TrimSpace(req.ProductID))
	if err != nil {
		return nil, domain.ErrInvalidProduct
	}

	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		quantity = *req.Quantity
	}

	product, err := s.productRepo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidProduct
	}

	price := product.Price
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		price = *req.Price
	}

	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:            s.genID.Generate().Int64(),
		ProductID:     productID.Int64(),
		CustomerName:  customerName,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Quantity:      quantity,
		Price:         price,
		Status:        domain.StatusQuoted,
		Notes:         trimPtr(req.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, s.db, quote); err != nil {
		return nil, err
	}

	resp := toResponse(domain.QuoteWithProduct{Quote: *quote, ProductName: product.Name})
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	quoteID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, quoteID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.CustomerName != nil {
		name := strings.TrimSpace(*req.CustomerName)
		if name == "" {
			return nil, domain.ErrInvalidCustomer
		}
		item.CustomerName = name
	}
	if req.CustomerPhone != nil {
		item.CustomerPhone = strings.TrimSpace(*req.CustomerPhone)
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.Status != nil {
		// Status labels are free-form; unknown labels are stored verbatim.
		item.Status = strings.TrimSpace(*req.Status)
	}
	if req.Notes != nil {
		item.Notes = trimPtr(req.Notes)
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(domain.QuoteWithProduct{Quote: *item})
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	quoteID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, quoteID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, quoteID.Int64())
}

func toResponse(q domain.QuoteWithProduct) domain.Response {
	return domain.Response{
		ID:             snowflake.ID(q.ID).String(),
		ProductID:      snowflake.ID(q.ProductID).String(),
		ProductName:    q.ProductName,
		ProductDeleted: q.ProductDeleted,
		CustomerName:   q.CustomerName,
		CustomerPhone:  q.CustomerPhone,
		Quantity:       q.Quantity,
		Price:          q.Price,
		Total:          q.Price.Mul(decimal.NewFromInt(int64(q.Quantity))),
		Status:         q.Status,
		Notes:          q.Notes,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
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
