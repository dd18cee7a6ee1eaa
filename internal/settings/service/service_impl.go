package service

import (
	"context"
	"strings"
	"time"

	"github.com/Antonio-99/catalogo/internal/config"
	"github.com/Antonio-99/catalogo/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Cfg  config.Config
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	cfg  config.Config
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("settings.service"),
		cfg:  p.Cfg,
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.Response, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	resp := toResponse(settings)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		settings.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.CompanyPhone != nil {
		settings.CompanyPhone = strings.TrimSpace(*req.CompanyPhone)
	}
	if req.CompanyEmail != nil {
		settings.CompanyEmail = strings.TrimSpace(*req.CompanyEmail)
	}
	if req.CompanyAddress != nil {
		settings.CompanyAddress = strings.TrimSpace(*req.CompanyAddress)
	}
	if req.WhatsAppNumber != nil {
		settings.WhatsAppNumber = strings.TrimSpace(*req.WhatsAppNumber)
	}
	if req.CurrencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CurrencyCode))
		if len(code) != 3 {
			return nil, domain.ErrInvalidCurrency
		}
		settings.CurrencyCode = code
	}
	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.StockAlertsEnabled != nil {
		settings.StockAlertsEnabled = *req.StockAlertsEnabled
	}
	if req.DefaultMinStock != nil {
		if *req.DefaultMinStock < 0 {
			return nil, domain.ErrInvalidMinStock
		}
		settings.DefaultMinStock = *req.DefaultMinStock
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toResponse(settings)
	return &resp, nil
}

// load returns the singleton row, falling back to configured defaults when
// the store has not been seeded yet.
func (s *Service) load(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &domain.Settings{
			ID:                   domain.SingletonID,
			CurrencyCode:         s.cfg.DefaultCurrency,
			NotificationsEnabled: true,
			StockAlertsEnabled:   true,
			DefaultMinStock:      s.cfg.DefaultMinStock,
			UpdatedAt:            time.Now().UTC(),
		}
	}
	return settings, nil
}

func toResponse(s *domain.Settings) domain.Response {
	return domain.Response{
		CompanyName:          s.CompanyName,
		CompanyPhone:         s.CompanyPhone,
		CompanyEmail:         s.CompanyEmail,
		CompanyAddress:       s.CompanyAddress,
		WhatsAppNumber:       s.WhatsAppNumber,
		CurrencyCode:         s.CurrencyCode,
		NotificationsEnabled: s.NotificationsEnabled,
		StockAlertsEnabled:   s.StockAlertsEnabled,
		DefaultMinStock:      s.DefaultMinStock,
		UpdatedAt:            s.UpdatedAt,
	}
}
