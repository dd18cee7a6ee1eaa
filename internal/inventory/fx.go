package inventory

import (
	"github.com/Antonio-99/catalogo/internal/inventory/repository"
	"github.com/Antonio-99/catalogo/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
