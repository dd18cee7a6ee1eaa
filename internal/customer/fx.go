package customer

import (
	"github.com/Antonio-99/catalogo/internal/customer/repository"
	"github.com/Antonio-99/catalogo/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
