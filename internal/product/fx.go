package product

import (
	"github.com/Antonio-99/catalogo/internal/product/repository"
	"github.com/Antonio-99/catalogo/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
