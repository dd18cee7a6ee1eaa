package category

import (
	"github.com/Antonio-99/catalogo/internal/category/repository"
	"github.com/Antonio-99/catalogo/internal/category/service"
	"go.uber.org/fx"
)

var Module = fx.Module("category.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
