package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Antonio-99/catalogo/internal/category"
	categorydomain "github.com/Antonio-99/catalogo/internal/category/domain"
	"github.com/Antonio-99/catalogo/internal/config"
	"github.com/Antonio-99/catalogo/internal/customer"
	customerdomain "github.com/Antonio-99/catalogo/internal/customer/domain"
	"github.com/Antonio-99/catalogo/internal/export"
	exportdomain "github.com/Antonio-99/catalogo/internal/export/domain"
	"github.com/Antonio-99/catalogo/internal/inventory"
	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	"github.com/Antonio-99/catalogo/internal/logger"
	"github.com/Antonio-99/catalogo/internal/metrics"
	"github.com/Antonio-99/catalogo/internal/product"
	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	"github.com/Antonio-99/catalogo/internal/quote"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	"github.com/Antonio-99/catalogo/internal/seed"
	"github.com/Antonio-99/catalogo/internal/settings"
	settingsdomain "github.com/Antonio-99/catalogo/internal/settings/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	metrics.Module,
	seed.Module,
	category.Module,
	product.Module,
	inventory.Module,
	quote.Module,
	customer.Module,
	settings.Module,
	export.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))
	r.Use(metrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", httpMetrics.Handler())

	return r
}

func registerGin(log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	categorySvc  categorydomain.Service
	productSvc   productdomain.Service
	inventorySvc inventorydomain.Service
	quoteSvc     quotedomain.Service
	customerSvc  customerdomain.Service
	settingsSvc  settingsdomain.Service
	exportSvc    exportdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	CategorySvc  categorydomain.Service
	ProductSvc   productdomain.Service
	InventorySvc inventorydomain.Service
	QuoteSvc     quotedomain.Service
	CustomerSvc  customerdomain.Service
	SettingsSvc  settingsdomain.Service
	ExportSvc    exportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		categorySvc:  p.CategorySvc,
		productSvc:   p.ProductSvc,
		inventorySvc: p.InventorySvc,
		quoteSvc:     p.QuoteSvc,
		customerSvc:  p.CustomerSvc,
		settingsSvc:  p.SettingsSvc,
		exportSvc:    p.ExportSvc,
	}
	svc.registerRoutes()
	return svc
}

func (s *Server) registerRoutes() {
	// Public storefront surface.
	api := s.engine.Group("/api")
	{
		api.GET("/categories", s.ListCategories)
		api.GET("/products", s.ListProducts)
		api.GET("/products/:id", s.GetProductByID)
		api.GET("/brands", s.ListBrands)
		api.POST("/quotes", s.CreateQuote)
	}

	// Admin panel surface.
	admin := s.engine.Group("/admin")
	{
		admin.GET("/categories", s.ListCategories)
		admin.POST("/categories", s.CreateCategory)
		admin.GET("/categories/:id", s.GetCategoryByID)
		admin.PUT("/categories/:id", s.UpdateCategory)
		admin.DELETE("/categories/:id", s.DeleteCategory)

		admin.GET("/products", s.ListProducts)
		admin.POST("/products", s.CreateProduct)
		admin.GET("/products/:id", s.GetProductByID)
		admin.PUT("/products/:id", s.UpdateProduct)
		admin.DELETE("/products/:id", s.DeleteProduct)

		admin.GET("/inventory", s.ListInventory)
		admin.GET("/inventory/low-stock", s.ListLowStock)
		admin.PUT("/inventory/:id", s.UpdateInventory)

		admin.GET("/quotes", s.ListQuotes)
		admin.POST("/quotes", s.CreateQuote)
		admin.GET("/quotes/:id", s.GetQuoteByID)
		admin.PUT("/quotes/:id", s.UpdateQuote)
		admin.DELETE("/quotes/:id", s.DeleteQuote)

		admin.GET("/customers", s.ListCustomers)
		admin.POST("/customers", s.CreateCustomer)
		admin.GET("/customers/:id", s.GetCustomerByID)
		admin.PUT("/customers/:id", s.UpdateCustomer)
		admin.DELETE("/customers/:id", s.DeleteCustomer)

		admin.GET("/settings", s.GetSettings)
		admin.PUT("/settings", s.UpdateSettings)

		admin.GET("/dashboard", s.GetDashboard)

		admin.GET("/export", s.ExportCatalog)
		admin.POST("/import", s.ImportCatalog)
		admin.POST("/reset", s.ResetCatalog)
	}
}
