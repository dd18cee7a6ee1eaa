package quote

import (
	"github.com/Antonio-99/catalogo/internal/quote/repository"
	"github.com/Antonio-99/catalogo/internal/quote/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quote.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
