package settings

import (
	"github.com/Antonio-99/catalogo/internal/settings/repository"
	"github.com/Antonio-99/catalogo/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
